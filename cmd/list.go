/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the user's stacks",
	Long: `List all stacks visible to the caller.

The table shows the combined name/ID, the current status and the creation
time, sorted oldest first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, err := getClient(cmd)
		if err != nil {
			return err
		}

		return renderStackList(ctx, c, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
