// Package cli provides the command-line interface for ThreadLens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "threadlens",
		Short: "Summarize the threads of a crash event",
		Long: `ThreadLens inspects crash-event payloads and summarizes every captured
thread: which frame it was in, which source file, and which thread crashed.

For each thread it selects the stack trace to analyze (exception-correlated
traces take precedence over thread-level ones), picks the most relevant
frame, and derives a short display label with an optional trimmed filename.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewThreadsCommand())
	rootCmd.AddCommand(commands.NewFramesCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
