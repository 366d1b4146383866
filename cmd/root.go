/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/orien/stackctl/internal/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stackctl",
	Short: "A command-line client for template-driven orchestration services",
	Long: `Stackctl is a CLI client for an orchestration service that deploys
stacks of resources from JSON templates:

• Create, update and delete stacks from template files, URLs or object stores
• Pass stack parameters as simple KEY=VALUE strings
• Inspect deployed stacks and retrieve their templates
• Validate templates server-side before deploying them

Point stackctl at your orchestration service with a stackctl.yaml file,
the STACKCTL_ENDPOINT environment variable or the --endpoint flag.`,
}

// RootCommand returns the root command (for documentation generation)
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version.Short()),
	)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("config", "stackctl.yaml", "config file (default is stackctl.yaml)")
	rootCmd.PersistentFlags().String("endpoint", "", "orchestration service endpoint (overrides config)")
}
