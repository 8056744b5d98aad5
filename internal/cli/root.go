// Package cli implements the kindling command-line interface: cobra
// commands over the engine, with text and JSON output.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Config   string // config file path ("" = default location)
	Database string // database path override ("" = from config)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the kindling CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kindling",
		Short: "kindling - daily reading streak tracker",
		Long: `Track a daily reading routine: record reads, postpone articles to a
small backlog, and keep a weekly-flame streak alive.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|text, default from config)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "database path (overrides config)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewReadCommand(opts))
	cmd.AddCommand(NewUnreadCommand(opts))
	cmd.AddCommand(NewDelayCommand(opts))
	cmd.AddCommand(NewBacklogCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))
	cmd.AddCommand(NewStreakCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewTagsCommand(opts))
	cmd.AddCommand(NewLogCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
