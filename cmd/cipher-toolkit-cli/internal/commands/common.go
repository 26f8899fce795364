package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cipher_toolkit/internal/pkg/config"
	"cipher_toolkit/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := config.NewLoggerSettingsFromEnv()

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openInput resolves the input-file flag; an empty value means stdin.
func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid input-file flag: %w", err)
	}
	if inputFilePath == "" {
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(filepath.Clean(inputFilePath))
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

// openOutput resolves the output-file flag; an empty value means stdout.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid output-file flag: %w", err)
	}
	if outputFilePath == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.OpenFile(filepath.Clean(outputFilePath), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

// readKey resolves the key either from the key flag or, when that is empty,
// from the file the key-file flag points at. Key files hold the literal key
// text, so each byte becomes one key codepoint.
func readKey(cmd *cobra.Command) (string, error) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return "", fmt.Errorf("invalid key flag: %w", err)
	}
	if key != "" {
		return key, nil
	}

	keyFilePath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return "", fmt.Errorf("invalid key-file flag: %w", err)
	}
	if keyFilePath == "" {
		return "", nil
	}

	content, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		return "", err
	}
	chars := make([]rune, len(content))
	for i, b := range content {
		chars[i] = rune(b)
	}
	return string(chars), nil
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "", "", "Key text")
	cmd.Flags().StringP("key-file", "", "", "Path to a file holding the key text")
}

func addStreamFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input-file", "", "", "Path to the input file (stdin when omitted)")
	cmd.Flags().StringP("output-file", "", "", "Path to the output file (stdout when omitted)")
}
