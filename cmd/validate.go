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
	"github.com/orien/stackctl/internal/params"
	"github.com/orien/stackctl/internal/template"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a template with parameters",
	Long: `Ask the orchestration service to validate a template together with a set
of parameters, without creating a stack.

The template comes from exactly one of --template-file, --template-url or
--template-object. The service's validation result is printed as indented
JSON.

Examples:
  stackctl validate -f wordpress.json
  stackctl validate -u http://templates.example/wordpress.json -P "DBUsername=admin"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		input := client.ValidateInput{
			Parameters:  parameters,
			Template:    fields.Template,
			TemplateURL: fields.TemplateURL,
		}

		result, err := c.Validate(ctx, input)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, result, "", "  "); err != nil {
			return fmt.Errorf("service returned an invalid validation result: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), buf.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addTemplateFlags(validateCmd)
	validateCmd.Flags().StringP("parameters", "P", "", "parameter values to validate, as KEY1=VALUE1;KEY2=VALUE2...")
}
