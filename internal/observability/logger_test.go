package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithoutSinksIsNop(t *testing.T) {
	logger := New(Options{Level: "debug"})
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Console: zapcore.AddSync(&buf), Name: "keepbusy"})

	logger.Debug("hidden")
	logger.Info("moving mouse", zap.Int("x", 10))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "moving mouse")
	assert.Contains(t, out, "keepbusy.")
	assert.Contains(t, out, `"x": 10`)
}

func TestFileSinkWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	logger := New(Options{Level: "info", File: path})

	logger.Warn("user active", zap.Duration("idle", 0))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "user active", entry["msg"])
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "loud", Console: zapcore.AddSync(&buf)})
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
