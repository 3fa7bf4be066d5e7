//go:build linux

package linux

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/stigoleg/keep-busy/internal/platform/command"
)

var mutterIdlePattern = regexp.MustCompile(`uint64\s+(\d+)`)

// GetIdleTime returns the session idle time. X11 sessions use xprintidle;
// GNOME on Wayland asks Mutter's IdleMonitor over D-Bus.
func GetIdleTime(ctx context.Context) (time.Duration, error) {
	s := DetectSession()
	switch s.IdleMethod() {
	case IdleXprintidle:
		out, err := command.Run(ctx, "xprintidle")
		if err != nil {
			return 0, err
		}
		return parseXprintidle(out)
	case IdleMutter:
		out, err := command.Run(ctx, "gdbus", "call", "--session",
			"--dest", "org.gnome.Mutter.IdleMonitor",
			"--object-path", "/org/gnome/Mutter/IdleMonitor/Core",
			"--method", "org.gnome.Mutter.IdleMonitor.GetIdletime")
		if err != nil {
			return 0, err
		}
		return parseMutterIdle(out)
	default:
		return 0, fmt.Errorf("no idle probe for %s session (desktop %s)", s.Display, s.Desktop)
	}
}

func parseXprintidle(out string) (time.Duration, error) {
	millis, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse xprintidle output %q: %w", out, err)
	}
	return time.Duration(millis) * time.Millisecond, nil
}

// parseMutterIdle parses gdbus output such as "(uint64 1234,)".
func parseMutterIdle(out string) (time.Duration, error) {
	m := mutterIdlePattern.FindStringSubmatch(out)
	if len(m) < 2 {
		return 0, fmt.Errorf("unexpected IdleMonitor output %q", out)
	}
	millis, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse IdleMonitor output %q: %w", out, err)
	}
	return time.Duration(millis) * time.Millisecond, nil
}
