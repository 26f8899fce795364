// Package config holds the toolkit's runtime settings and their validation.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo    = "info"
	LogLevelDebug   = "debug"
	LogLevelError   = "error"
	LogLevelWarning = "warning"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings holds configuration for logging: level, sink type and the
// rotation parameters of the file sink.
type LoggerSettings struct {
	LogLevel   string `validate:"required,oneof=info debug error warning"`
	LogType    string `validate:"required,oneof=console file"`
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// NewLoggerSettingsFromEnv builds logger settings from the
// CIPHER_TOOLKIT_LOG_* environment variables, falling back to an info-level
// console logger.
func NewLoggerSettingsFromEnv() *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   envOr("CIPHER_TOOLKIT_LOG_LEVEL", LogLevelInfo),
		LogType:    envOr("CIPHER_TOOLKIT_LOG_TYPE", LogTypeConsole),
		FilePath:   os.Getenv("CIPHER_TOOLKIT_LOG_FILE"),
		MaxSize:    envIntOr("CIPHER_TOOLKIT_LOG_MAX_SIZE", 10),
		MaxBackups: envIntOr("CIPHER_TOOLKIT_LOG_MAX_BACKUPS", 3),
		MaxAge:     envIntOr("CIPHER_TOOLKIT_LOG_MAX_AGE", 28),
	}
}

// Validate checks that all fields in LoggerSettings are valid.
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile {
		if s.FilePath == "" {
			return fmt.Errorf("file path is required for file logger")
		}
		if s.MaxSize < 1 || s.MaxSize > 100 {
			return fmt.Errorf("max size must be between 1 and 100 MB")
		}
		if s.MaxBackups < 1 || s.MaxBackups > 10 {
			return fmt.Errorf("max backups must be between 1 and 10")
		}
		if s.MaxAge < 1 || s.MaxAge > 365 {
			return fmt.Errorf("max age must be between 1 and 365 days")
		}
	}

	return nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envIntOr(name string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return fallback
	}
	return value
}
