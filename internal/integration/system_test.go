package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/keep-busy/internal/config"
)

// TestConfigFileAndEnv runs the binary with settings coming only from the
// config file and a .env file in its working directory.
func TestConfigFileAndEnv(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping system test in short mode")
	}

	cmd := helperCommand(t)
	cfgJSON := `{"profile": "coding", "dryRun": true, "noTui": true, "minInterval": 1, "maxInterval": 2}`
	require.NoError(t, os.WriteFile(filepath.Join(cmd.Dir, config.DefaultConfigFile), []byte(cfgJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cmd.Dir, config.DefaultEnvFile), []byte("KEEPBUSY_DURATION=2s\nKEEPBUSY_LOG_LEVEL=debug\n"), 0o644))

	require.NoError(t, cmd.Start())
	require.NoError(t, waitExit(t, cmd, 15*time.Second))

	out := readLog(t, filepath.Join(cmd.Dir, config.DefaultLogFile))
	assert.Contains(t, out, "loaded config file")
	assert.Contains(t, out, `"profile":"coding"`)
	assert.Contains(t, out, `"min_interval_ms":1000`)
	assert.Contains(t, out, "run time elapsed")
}

// TestUnexpectedTermination kills a run outright; the log written so far
// must stay readable.
func TestUnexpectedTermination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping system test in short mode")
	}

	cmd := helperCommand(t, "start", "-p", "reading", "--dry-run", "--no-tui")
	require.NoError(t, cmd.Start(), "helper process should start")
	time.Sleep(2 * time.Second)

	require.NoError(t, cmd.Process.Kill())
	_ = cmd.Wait()

	out := readLog(t, filepath.Join(cmd.Dir, config.DefaultLogFile))
	assert.Contains(t, out, "starting profile")
	assert.NotContains(t, out, `"finished"`)
}
