//go:build !windows

// Package integration holds end-to-end tests that drive the real command
// line in a helper process.
package integration

import (
	"os"
	"syscall"
)

// shutdownSignals are the signals that must stop a headless run cleanly.
func shutdownSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	}
}
