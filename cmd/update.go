/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/stackctl/internal/client"
	"github.com/orien/stackctl/internal/params"
	"github.com/orien/stackctl/internal/template"
	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <NAME/ID>",
	Short: "Update a stack",
	Long: `Update an existing stack with a new template and parameters.

The template comes from exactly one of --template-file, --template-url or
--template-object, the same way as for create.

Examples:
  stackctl update -f wordpress.json wordpress
  stackctl update -u http://templates.example/wordpress.json -P "DBPassword=rotated" wordpress`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := cmd.Context()

		c, err := getClient(cmd)
		if err != nil {
			return err
		}

		parameterString, _ := cmd.Flags().GetString("parameters")
		parameters, err := params.Parse(parameterString)
		if err != nil {
			return err
		}

		fields, err := template.Resolve(ctx, templateSource(cmd), c)
		if err != nil {
			return err
		}

		input := client.UpdateStackInput{
			Parameters:  parameters,
			Template:    fields.Template,
			TemplateURL: fields.TemplateURL,
		}

		if err := c.Update(ctx, id, input); err != nil {
			return err
		}

		return renderStackList(ctx, c, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	addTemplateFlags(updateCmd)
	updateCmd.Flags().StringP("parameters", "P", "", "parameter values used to update the stack, as KEY1=VALUE1;KEY2=VALUE2...")
}
