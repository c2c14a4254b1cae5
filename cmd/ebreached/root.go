// Package main provides the entry point for the ebreached CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ebreached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebreached",
		Short: "Check email addresses against the BreachDirectory breach database",
		Long: `ebreached checks one or more email addresses against the BreachDirectory
breach database (via RapidAPI) and writes the findings to a timestamped
result file.

For each address it reports whether the address appears in a known data
breach, and where available the exposed password, its SHA-1 digest, the
stored hash, and the breach sources.

An API key for the BreachDirectory API on RapidAPI is required.
Keep the key in a file and pass it with --key-file to keep it out of
your shell history.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
