//go:build windows

// Package integration holds end-to-end tests that drive the real command
// line in a helper process.
package integration

import "os"

// shutdownSignals is empty: Windows cannot deliver console signals to a
// child process through os.Process.Signal.
func shutdownSignals() []os.Signal {
	return nil
}
