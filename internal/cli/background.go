package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/stigoleg/keep-busy/internal/config"
)

// backgroundChildEnv marks the detached copy so it runs instead of
// detaching again.
const backgroundChildEnv = config.EnvPrefix + "_BACKGROUND_CHILD"

func isBackgroundChild() bool {
	return os.Getenv(backgroundChildEnv) == "1"
}

// detach re-executes the current binary without a terminal and returns once
// the child has started.
func detach(out io.Writer, cfg *config.Config) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	cmd := exec.Command(exe, stripBackgroundArgs(os.Args[1:])...)
	cmd.Env = append(os.Environ(), backgroundChildEnv+"=1")
	cmd.SysProcAttr = detachedProcAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start background process: %w", err)
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release background process: %w", err)
	}

	fmt.Fprintf(out, "Simulating %s in the background (PID %d).\n", cfg.Run.Profile, pid)
	if cfg.LogFile != "" {
		fmt.Fprintf(out, "Logs: %s\n", cfg.LogFile)
	}
	fmt.Fprintf(out, "Stop it with: %s\n", stopHint(pid))
	return nil
}

// stripBackgroundArgs drops the background flag in all its spellings.
func stripBackgroundArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		switch {
		case a == "-b", a == "--background":
		case strings.HasPrefix(a, "-b="), strings.HasPrefix(a, "--background="):
		default:
			out = append(out, a)
		}
	}
	return out
}
