//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"cipher_toolkit/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("ConsoleLogger", func(t *testing.T) {
		log, err := newLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		})
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("FileLogger", func(t *testing.T) {
		log, err := newLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelInfo,
			LogType:    config.LogTypeFile,
			FilePath:   t.TempDir() + "/toolkit.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		_, err := newLogger(&config.LoggerSettings{
			LogLevel: "verbose",
			LogType:  config.LogTypeConsole,
		})
		assert.Error(t, err)
	})
}

func TestConsoleLoggerLogsToOutput(t *testing.T) {
	var buf bytes.Buffer

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	log := &ConsoleLogger{logger: slog.New(slog.NewTextHandler(&buf, opts))}

	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestInitLoggerIsIdempotent(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))
	require.NoError(t, InitLogger(settings))

	first, err := GetLogger()
	require.NoError(t, err)

	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
