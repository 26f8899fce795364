package commands

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/infrastructure/cryptography"
	"cipher_toolkit/internal/pkg/logger"
	"cipher_toolkit/internal/pkg/validators"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var keyCipherNames = []string{"feistel", "idea", "rc6", "arc4"}

// KeyCommandHandler encapsulates logic for generating cipher keys via CLI.
type KeyCommandHandler struct {
	logger logger.Logger
}

// NewKeyCommandHandler initializes and returns a KeyCommandHandler instance
// with a configured logger.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &KeyCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *KeyCommandHandler) cipherForName(name string, keyBytes int) (ciphers.KeyCipher, error) {
	if err := validators.ValueInList("Cipher", name, keyCipherNames); err != nil {
		return nil, err
	}

	switch name {
	case "feistel":
		return cryptography.NewFeistel(commandHandler.logger)
	case "idea":
		return cryptography.NewIDEA(commandHandler.logger)
	case "rc6":
		return cryptography.NewRC6(commandHandler.logger, keyBytes)
	default:
		return cryptography.NewARC4(commandHandler.logger, keyBytes)
	}
}

// randomKeyText draws a printable random key so the result survives a round
// trip through a text file.
func randomKeyText(length int) (string, error) {
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	for i, b := range raw {
		raw[i] = '!' + b%94
	}
	return string(raw), nil
}

// GenerateKeyCmd generates a key sized for the selected cipher and persists
// it in a selected directory.
func (commandHandler *KeyCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	cipherName, err := cmd.Flags().GetString("cipher")
	if err != nil {
		return fmt.Errorf("invalid cipher flag: %w", err)
	}
	keyBytes, err := cmd.Flags().GetInt("key-bytes")
	if err != nil {
		return fmt.Errorf("invalid key-bytes flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	cipher, err := commandHandler.cipherForName(cipherName, keyBytes)
	if err != nil {
		return err
	}

	key, err := randomKeyText(cipher.KeyBytes())
	if err != nil {
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-%s-key.txt", uuid.New(), cipherName))
	if err := os.WriteFile(keyFilePath, []byte(key), 0600); err != nil {
		return err
	}

	commandHandler.logger.Info("Key saved to ", keyFilePath)
	return nil
}

// InitKeyCommands registers the key generation command.
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler: %w", err)
	}

	generateKeyCmd := &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a random key sized for a cipher",
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("cipher", "", "", "Cipher to size the key for (feistel, idea, rc6, arc4)")
	generateKeyCmd.Flags().IntP("key-bytes", "", 16, "Key length for the variable-key ciphers")
	generateKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the key")
	rootCmd.AddCommand(generateKeyCmd)

	return nil
}
