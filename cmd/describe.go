/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/orien/stackctl/internal/client"
	"github.com/orien/stackctl/internal/errs"
	"github.com/orien/stackctl/internal/output"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <NAME/ID>",
	Short: "Display detailed information about a stack",
	Long: `Display the full record of a stack as a property/value table.

Long text properties such as the status reason are wrapped for readability,
parameters and outputs are shown as indented JSON, and links are listed one
URL per line.

Examples:
  stackctl describe wordpress
  stackctl describe 6286822d-6d32-4b24-b40f-7b213a38b971`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := cmd.Context()

		c, err := getClient(cmd)
		if err != nil {
			return err
		}

		s, err := c.Get(ctx, id)
		if err != nil {
			if client.IsNotFound(err) {
				return errs.CommandErrorf("Stack not found: %s", id)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), output.StackDetail(s))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
