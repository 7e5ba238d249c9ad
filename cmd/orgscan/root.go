// Package main provides the entry point for the orgscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for orgscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgscan",
		Short: "Enrich organization records with website and social-media data",
		Long: `orgscan crawls organization websites, extracts page metadata, and
discovers linked social-media profiles together with their follower counts.

Use "scan" to process site URLs given on the command line, or "run" to
fetch the upstream organization listing and process every record in it.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewRunCmd())
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
