/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/stackctl/internal/client"
	"github.com/orien/stackctl/internal/errs"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <NAME/ID>",
	Short: "Delete a stack",
	Long: `Delete the stack identified by name or ID.

The service performs the deletion asynchronously; the remaining stacks are
listed afterwards so the in-progress status is visible.

Examples:
  stackctl delete wordpress
  stackctl delete 6286822d-6d32-4b24-b40f-7b213a38b971`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := cmd.Context()

		c, err := getClient(cmd)
		if err != nil {
			return err
		}

		if err := c.Delete(ctx, id); err != nil {
			if client.IsNotFound(err) {
				return errs.CommandErrorf("Stack not found: %s", id)
			}
			return err
		}

		return renderStackList(ctx, c, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
