package command

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || !Exists("sh") {
		t.Skip("needs a POSIX shell")
	}
}

func TestExists(t *testing.T) {
	assert.False(t, Exists("keepbusy-no-such-helper"))
}

func TestRunCombinedOutput(t *testing.T) {
	requireShell(t)
	out, err := Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, "out\nerr", out)
}

func TestRunFailureCarriesOutput(t *testing.T) {
	requireShell(t)
	out, err := Run(context.Background(), "sh", "-c", "echo no display; exit 3")
	require.Error(t, err)
	assert.Equal(t, "no display", out)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "sh:")
	assert.Contains(t, err.Error(), "no display")
}

func TestRunMissingBinary(t *testing.T) {
	_, err := Run(context.Background(), "keepbusy-no-such-helper")
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, err.Error(), "keepbusy-no-such-helper")
}

func TestRunWithTimeout(t *testing.T) {
	requireShell(t)
	start := time.Now()
	_, err := RunWithTimeout(context.Background(), 50*time.Millisecond, "sh", "-c", "exec sleep 5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 4*time.Second)
}
