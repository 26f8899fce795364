package commands

import (
	"fmt"

	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/infrastructure/cryptography"
	"cipher_toolkit/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// BlockCommandHandler encapsulates logic for handling block cipher operations
// via CLI.
type BlockCommandHandler struct {
	logger logger.Logger
}

// NewBlockCommandHandler initializes and returns a BlockCommandHandler
// instance with a configured logger.
func NewBlockCommandHandler() (*BlockCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &BlockCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *BlockCommandHandler) process(cmd *cobra.Command, cipher ciphers.KeyCipher, decrypting bool) error {
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

// FeistelCmd encrypts or decrypts a stream with the Feistel demonstration
// cipher.
func (commandHandler *BlockCommandHandler) FeistelCmd(decrypting bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cipher, err := cryptography.NewFeistel(commandHandler.logger)
		if err != nil {
			return err
		}
		return commandHandler.process(cmd, cipher, decrypting)
	}
}

// IDEACmd encrypts or decrypts a stream with IDEA.
func (commandHandler *BlockCommandHandler) IDEACmd(decrypting bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cipher, err := cryptography.NewIDEA(commandHandler.logger)
		if err != nil {
			return err
		}
		return commandHandler.process(cmd, cipher, decrypting)
	}
}

// RC6Cmd encrypts or decrypts a stream with RC6, sized by the key-bytes flag.
func (commandHandler *BlockCommandHandler) RC6Cmd(decrypting bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		keyBytes, err := cmd.Flags().GetInt("key-bytes")
		if err != nil {
			return fmt.Errorf("invalid key-bytes flag: %w", err)
		}

		cipher, err := cryptography.NewRC6(commandHandler.logger, keyBytes)
		if err != nil {
			return err
		}
		return commandHandler.process(cmd, cipher, decrypting)
	}
}

// InitBlockCommands registers the block cipher commands.
func InitBlockCommands(rootCmd *cobra.Command) error {
	handler, err := NewBlockCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create block command handler: %w", err)
	}

	register := func(use, short string, run func(*cobra.Command, []string) error, extraFlags func(*cobra.Command)) {
		cmd := &cobra.Command{Use: use, Short: short, RunE: run}
		addStreamFlags(cmd)
		addKeyFlags(cmd)
		if extraFlags != nil {
			extraFlags(cmd)
		}
		rootCmd.AddCommand(cmd)
	}

	register("encrypt-feistel", "Encrypt text using the Feistel network cipher", handler.FeistelCmd(false), nil)
	register("decrypt-feistel", "Decrypt text using the Feistel network cipher", handler.FeistelCmd(true), nil)

	register("encrypt-idea", "Encrypt text using IDEA", handler.IDEACmd(false), nil)
	register("decrypt-idea", "Decrypt text using IDEA", handler.IDEACmd(true), nil)

	rc6Flags := func(cmd *cobra.Command) {
		cmd.Flags().IntP("key-bytes", "", 16, "Maximum RC6 key length in bytes (0-255)")
	}
	register("encrypt-rc6", "Encrypt text using RC6", handler.RC6Cmd(false), rc6Flags)
	register("decrypt-rc6", "Decrypt text using RC6", handler.RC6Cmd(true), rc6Flags)

	return nil
}
