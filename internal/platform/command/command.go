// Package command runs the short-lived OS helpers the platform drivers rely
// on (ioreg, xprintidle, gdbus, xdg-open).
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Timeout bounds every helper started through Run.
const Timeout = 3 * time.Second

// waitDelay bounds how long Run waits for output pipes after the helper is
// killed, in case it left children holding them open.
const waitDelay = 500 * time.Millisecond

// Exists reports whether name is on PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes name with args under Timeout and returns the trimmed
// combined output.
func Run(ctx context.Context, name string, args ...string) (string, error) {
	return RunWithTimeout(ctx, Timeout, name, args...)
}

// RunWithTimeout is Run with an explicit bound. Failures carry the command
// name and its output.
func RunWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	out := strings.TrimSpace(buf.String())

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("%s timed out after %s", name, timeout)
	}
	if err != nil {
		return out, fmt.Errorf("%s: %w (output: %q)", name, err, out)
	}
	return out, nil
}
