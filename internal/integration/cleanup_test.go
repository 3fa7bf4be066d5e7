package integration

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/keep-busy/internal/config"
)

// TestCleanupOnShutdownSignals starts an indefinite headless run, signals
// it and expects a clean exit with the shutdown logged.
func TestCleanupOnShutdownSignals(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("signals cannot be sent to child processes on Windows")
	}
	if testing.Short() {
		t.Skip("skipping cleanup test in short mode")
	}

	for _, sig := range shutdownSignals() {
		t.Run(fmt.Sprint(sig), func(t *testing.T) {
			cmd := helperCommand(t, "start", "-p", "coding", "--dry-run", "--no-tui")
			logFile := filepath.Join(cmd.Dir, config.DefaultLogFile)
			require.NoError(t, cmd.Start(), "helper process should start")

			// Let the engine get going before interrupting it.
			time.Sleep(1500 * time.Millisecond)
			require.NoError(t, cmd.Process.Signal(sig))

			assert.NoError(t, waitExit(t, cmd, 10*time.Second), "process should exit cleanly after %v", sig)

			out := readLog(t, logFile)
			assert.Contains(t, out, "shutting down")
			assert.Contains(t, out, `"finished"`)
		})
	}
}

// TestRepeatedSignals makes sure a second signal during shutdown does not
// crash the process.
func TestRepeatedSignals(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("signals cannot be sent to child processes on Windows")
	}
	if testing.Short() {
		t.Skip("skipping cleanup test in short mode")
	}

	sigs := shutdownSignals()
	cmd := helperCommand(t, "start", "-p", "reading", "--dry-run", "--no-tui")
	require.NoError(t, cmd.Start())
	time.Sleep(1500 * time.Millisecond)

	require.NoError(t, cmd.Process.Signal(sigs[0]))
	_ = cmd.Process.Signal(sigs[1])

	err := waitExit(t, cmd, 10*time.Second)
	if err != nil {
		// The second signal may land after NotifyContext has stopped
		// listening and terminate the process with the default action.
		t.Logf("process ended with %v", err)
	}
}
