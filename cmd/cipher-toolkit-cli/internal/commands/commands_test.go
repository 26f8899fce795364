//go:build unit
// +build unit

package commands

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cipher_toolkit/internal/domain/ciphers"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd(t *testing.T) *cobra.Command {
	t.Helper()

	rootCmd := &cobra.Command{
		Use:           "cipher-toolkit-cli",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	require.NoError(t, InitBlockCommands(rootCmd))
	require.NoError(t, InitStreamCommands(rootCmd))

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd
}

func execute(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd := newTestRootCmd(t)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCommandsPropagateFailures(t *testing.T) {
	t.Run("EmptyKey", func(t *testing.T) {
		err := execute(t, "encrypt-feistel")
		assert.ErrorIs(t, err, ciphers.ErrEmptyKey)
	})

	t.Run("MissingKeyFile", func(t *testing.T) {
		err := execute(t, "encrypt-feistel",
			"--key-file", filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})

	t.Run("MalformedCiphertext", func(t *testing.T) {
		inputFile := filepath.Join(t.TempDir(), "cipher.txt")
		require.NoError(t, os.WriteFile(inputFile, []byte("ZZZZ"), 0600))

		err := execute(t, "decrypt-feistel",
			"--key", "key",
			"--input-file", inputFile,
			"--output-file", filepath.Join(t.TempDir(), "out.txt"))

		var hexErr *ciphers.HexNotValidError
		assert.True(t, errors.As(err, &hexErr))
	})

	t.Run("KeyBytesOutOfRange", func(t *testing.T) {
		err := execute(t, "encrypt-arc4",
			"--key", "secret key",
			"--key-bytes", "2")

		var rangeErr *ciphers.ValueNotInRangeError
		assert.True(t, errors.As(err, &rangeErr))
	})
}

func TestCommandsSucceedOnValidInput(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "plain.txt")
	outputFile := filepath.Join(dir, "cipher.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte("hello"), 0600))

	require.NoError(t, execute(t, "encrypt-feistel",
		"--key", "key!",
		"--input-file", inputFile,
		"--output-file", outputFile))

	encrypted, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.NotEmpty(t, encrypted)
}
