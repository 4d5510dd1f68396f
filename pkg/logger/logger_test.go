package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/aerostudent/teamreg/internal/config"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Debugw("hidden")
	logger.Infow("team created", "uuid", "0b1c")
	require.NoError(t, logger.Sync())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "team created", entry["msg"])
	assert.Equal(t, "0b1c", entry["uuid"])
	assert.Equal(t, "teamreg", entry["service"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewWithConfig_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewWithConfig(appConfig.LoggerConfig{Level: tt.level, Format: "json", Output: "stdout"})
			require.NoError(t, err)

			assert.True(t, logger.Desugar().Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Desugar().Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNewWithConfig_ConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{Level: "debug", Format: "console", Output: path})
	require.NoError(t, err)

	logger.Warnw("quota reached", "school_id", 101)
	require.NoError(t, logger.Sync())

	line := readLines(t, path)[0]
	assert.Contains(t, line, "WARN")
	assert.Contains(t, line, "quota reached")
	assert.False(t, json.Valid([]byte(line)))
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "stderr")

	logger, err := New()
	require.NoError(t, err)

	assert.False(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestNewWithConfig_UnwritableOutput(t *testing.T) {
	_, err := NewWithConfig(appConfig.LoggerConfig{
		Level: "info", Format: "json", Output: filepath.Join(t.TempDir(), "missing", "dir", "app.log"),
	})

	assert.Error(t, err)
}
