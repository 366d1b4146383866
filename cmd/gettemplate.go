/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/orien/stackctl/internal/client"
	"github.com/orien/stackctl/internal/errs"
	"github.com/spf13/cobra"
)

// getTemplateCmd represents the gettemplate command
var getTemplateCmd = &cobra.Command{
	Use:     "gettemplate <NAME/ID>",
	Aliases: []string{"get-template"},
	Short:   "Get the template of a stack",
	Long: `Retrieve the template document of a deployed stack and print it as
indented JSON.

Examples:
  stackctl gettemplate wordpress
  stackctl gettemplate wordpress > wordpress.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := cmd.Context()

		c, err := getClient(cmd)
		if err != nil {
			return err
		}

		tmpl, err := c.Template(ctx, id)
		if err != nil {
			if client.IsNotFound(err) {
				return errs.CommandErrorf("Stack not found: %s", id)
			}
			return err
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, tmpl, "", "  "); err != nil {
			return fmt.Errorf("service returned an invalid template document: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), buf.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getTemplateCmd)
}
