//go:build darwin

package platform

import (
	"context"
	"time"

	"github.com/stigoleg/keep-busy/internal/platform/command"
)

func osIdleProbe() probeFunc {
	return darwinIdleTime
}

// darwinIdleTime reads HIDIdleTime (nanoseconds) from the IOHIDSystem registry entry.
func darwinIdleTime(ctx context.Context) (time.Duration, error) {
	out, err := command.Run(ctx, "ioreg", "-c", "IOHIDSystem")
	if err != nil {
		return 0, err
	}
	return parseHIDIdleTime(out)
}
