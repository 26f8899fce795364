// Package main is the entry point for the cipher-toolkit-cli application.
// It initializes the root command, registers the block, stream, grid and key
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "cipher_toolkit/cmd/cipher-toolkit-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:           "cipher-toolkit-cli",
		Short:         "Classic and didactic cipher CLI tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `cipher-toolkit-cli encrypts and decrypts text with a set of classic and
didactic symmetric ciphers: a Feistel network, IDEA, RC6, ARC4, the Vernam
one-time pad, the two-square cipher and the Cardan grille.

These implementations exist for study; none of them is suitable for
protecting real data.

Logging is configured through the CIPHER_TOOLKIT_LOG_* environment variables.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitBlockCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize block commands: %w", err)
	}

	if err := commands.InitStreamCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize stream commands: %w", err)
	}

	if err := commands.InitGridCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize grid commands: %w", err)
	}

	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
