package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"cipher_toolkit/internal/infrastructure/cryptography"
	"cipher_toolkit/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// GridCommandHandler encapsulates logic for handling the grid based ciphers
// via CLI.
type GridCommandHandler struct {
	logger logger.Logger
}

// NewGridCommandHandler initializes and returns a GridCommandHandler instance
// with a configured logger.
func NewGridCommandHandler() (*GridCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &GridCommandHandler{logger: loggerInstance}, nil
}

// loadOrCreateSquares loads the squares file, generating and persisting a
// fresh random pair when the file does not exist yet.
func (commandHandler *GridCommandHandler) loadOrCreateSquares(filename string) ([2]*cryptography.Square, error) {
	if filename == "" {
		filename = fmt.Sprintf("%s-squares.txt", uuid.New())
	}

	if _, err := os.Stat(filename); err == nil {
		return cryptography.LoadSquares(filename)
	}

	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	squares := [2]*cryptography.Square{
		cryptography.NewRandomSquare(random),
		cryptography.NewRandomSquare(random),
	}
	if err := cryptography.SaveSquares(filename, squares); err != nil {
		return squares, err
	}

	commandHandler.logger.Info("Two-square grids saved to ", filename)
	return squares, nil
}

// EncryptTwoSquareCmd encrypts a stream with the two-square cipher, creating
// the square grids on first use.
func (commandHandler *GridCommandHandler) EncryptTwoSquareCmd(cmd *cobra.Command, _ []string) error {
	squaresFilePath, err := cmd.Flags().GetString("squares-file")
	if err != nil {
		return fmt.Errorf("invalid squares-file flag: %w", err)
	}

	squares, err := commandHandler.loadOrCreateSquares(squaresFilePath)
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

	cipher := cryptography.NewTwoSquare(commandHandler.logger)
	return cipher.Encrypt(input, squares, output)
}

// DecryptTwoSquareCmd decrypts a stream with the two-square cipher.
func (commandHandler *GridCommandHandler) DecryptTwoSquareCmd(cmd *cobra.Command, _ []string) error {
	squaresFilePath, err := cmd.Flags().GetString("squares-file")
	if err != nil {
		return fmt.Errorf("invalid squares-file flag: %w", err)
	}

	squares, err := cryptography.LoadSquares(squaresFilePath)
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

	cipher := cryptography.NewTwoSquare(commandHandler.logger)
	return cipher.Decrypt(input, squares, output)
}

// CardanCmd encrypts or decrypts a stream with the Cardan grille.
func (commandHandler *GridCommandHandler) CardanCmd(decrypting bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		maskFilePath, err := cmd.Flags().GetString("mask-file")
		if err != nil {
			return fmt.Errorf("invalid mask-file flag: %w", err)
		}

		mask, err := cryptography.LoadMask(maskFilePath)
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

		cipher := cryptography.NewCardan(commandHandler.logger)
		if decrypting {
			return cipher.Decrypt(input, mask, output)
		}
		return cipher.Encrypt(input, mask, output)
	}
}

// InitGridCommands registers the two-square and Cardan grille commands.
func InitGridCommands(rootCmd *cobra.Command) error {
	handler, err := NewGridCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create grid command handler: %w", err)
	}

	encryptTwoSquareCmd := &cobra.Command{
		Use:   "encrypt-two-square",
		Short: "Encrypt text using the two-square cipher",
		RunE:  handler.EncryptTwoSquareCmd,
	}
	addStreamFlags(encryptTwoSquareCmd)
	encryptTwoSquareCmd.Flags().StringP("squares-file", "", "", "Path to the square grids (generated when missing)")
	rootCmd.AddCommand(encryptTwoSquareCmd)

	decryptTwoSquareCmd := &cobra.Command{
		Use:   "decrypt-two-square",
		Short: "Decrypt text using the two-square cipher",
		RunE:  handler.DecryptTwoSquareCmd,
	}
	addStreamFlags(decryptTwoSquareCmd)
	decryptTwoSquareCmd.Flags().StringP("squares-file", "", "", "Path to the square grids")
	rootCmd.AddCommand(decryptTwoSquareCmd)

	encryptCardanCmd := &cobra.Command{
		Use:   "encrypt-cardan",
		Short: "Encrypt text using a Cardan grille",
		RunE:  handler.CardanCmd(false),
	}
	addStreamFlags(encryptCardanCmd)
	encryptCardanCmd.Flags().StringP("mask-file", "", "", "Path to the grille mask")
	rootCmd.AddCommand(encryptCardanCmd)

	decryptCardanCmd := &cobra.Command{
		Use:   "decrypt-cardan",
		Short: "Decrypt text using a Cardan grille",
		RunE:  handler.CardanCmd(true),
	}
	addStreamFlags(decryptCardanCmd)
	decryptCardanCmd.Flags().StringP("mask-file", "", "", "Path to the grille mask")
	rootCmd.AddCommand(decryptCardanCmd)

	return nil
}
