package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"cipher_toolkit/internal/infrastructure/cryptography"
	"cipher_toolkit/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// StreamCommandHandler encapsulates logic for handling stream cipher
// operations via CLI.
type StreamCommandHandler struct {
	logger logger.Logger
}

// NewStreamCommandHandler initializes and returns a StreamCommandHandler
// instance with a configured logger.
func NewStreamCommandHandler() (*StreamCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &StreamCommandHandler{logger: loggerInstance}, nil
}

// ARC4Cmd encrypts or decrypts a stream with the wide-word ARC4 variant.
func (commandHandler *StreamCommandHandler) ARC4Cmd(decrypting bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		keyBytes, err := cmd.Flags().GetInt("key-bytes")
		if err != nil {
			return fmt.Errorf("invalid key-bytes flag: %w", err)
		}

		cipher, err := cryptography.NewARC4(commandHandler.logger, keyBytes)
		if err != nil {
			return err
		}

		key, err := readKey(cmd)
		if err != nil {
			return err
		}

		input, closeInput, err := openInput(cmd)
		if err != nil {
			return err
		}
		defer closeInput()

		output, closeOutput, err := openOutput(cmd)
		if err != nil {
			return err
		}
		defer closeOutput()

		if decrypting {
			return cipher.Decrypt(input, key, output)
		}
		return cipher.Encrypt(input, key, output)
	}
}

// EncryptVernamCmd encrypts a stream with a one-time pad, persisting the
// generated key next to the ciphertext.
func (commandHandler *StreamCommandHandler) EncryptVernamCmd(cmd *cobra.Command, _ []string) error {
	keyFilePath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return fmt.Errorf("invalid key-file flag: %w", err)
	}
	if keyFilePath == "" {
		keyFilePath = fmt.Sprintf("%s-vernam-key.txt", uuid.New())
	}

	input, closeInput, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	output, closeOutput, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	keyFile, err := os.OpenFile(filepath.Clean(keyFilePath), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = keyFile.Close() }()

	cipher := cryptography.NewVernam(commandHandler.logger, nil)
	if err := cipher.Encrypt(input, keyFile, output); err != nil {
		return err
	}

	commandHandler.logger.Info("Vernam key saved to ", keyFilePath)
	return nil
}

// DecryptVernamCmd decrypts a one-time pad stream using the stored key.
func (commandHandler *StreamCommandHandler) DecryptVernamCmd(cmd *cobra.Command, _ []string) error {
	keyFilePath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return fmt.Errorf("invalid key-file flag: %w", err)
	}

	keyFile, err := os.Open(filepath.Clean(keyFilePath))
	if err != nil {
		return err
	}
	defer func() { _ = keyFile.Close() }()

	input, closeInput, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	output, closeOutput, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	cipher := cryptography.NewVernam(commandHandler.logger, nil)
	return cipher.Decrypt(input, keyFile, output)
}

// InitStreamCommands registers the stream cipher commands.
func InitStreamCommands(rootCmd *cobra.Command) error {
	handler, err := NewStreamCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create stream command handler: %w", err)
	}

	arc4Flags := func(cmd *cobra.Command) {
		addStreamFlags(cmd)
		addKeyFlags(cmd)
		cmd.Flags().IntP("key-bytes", "", 256, "Maximum ARC4 key length in bytes (5-256)")
	}

	encryptARC4Cmd := &cobra.Command{
		Use:   "encrypt-arc4",
		Short: "Encrypt text using the ARC4 stream cipher",
		RunE:  handler.ARC4Cmd(false),
	}
	arc4Flags(encryptARC4Cmd)
	rootCmd.AddCommand(encryptARC4Cmd)

	decryptARC4Cmd := &cobra.Command{
		Use:   "decrypt-arc4",
		Short: "Decrypt text using the ARC4 stream cipher",
		RunE:  handler.ARC4Cmd(true),
	}
	arc4Flags(decryptARC4Cmd)
	rootCmd.AddCommand(decryptARC4Cmd)

	encryptVernamCmd := &cobra.Command{
		Use:   "encrypt-vernam",
		Short: "Encrypt text with a one-time pad, saving the generated key",
		RunE:  handler.EncryptVernamCmd,
	}
	addStreamFlags(encryptVernamCmd)
	encryptVernamCmd.Flags().StringP("key-file", "", "", "Path to write the generated key to (generated name when omitted)")
	rootCmd.AddCommand(encryptVernamCmd)

	decryptVernamCmd := &cobra.Command{
		Use:   "decrypt-vernam",
		Short: "Decrypt a one-time pad ciphertext with its stored key",
		RunE:  handler.DecryptVernamCmd,
	}
	addStreamFlags(decryptVernamCmd)
	decryptVernamCmd.Flags().StringP("key-file", "", "", "Path to the stored key")
	rootCmd.AddCommand(decryptVernamCmd)

	return nil
}
