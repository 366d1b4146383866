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

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <STACK_NAME>",
	Short: "Create a stack",
	Long: `Create a stack on the orchestration service from a template.

The template comes from exactly one of --template-file, --template-url or
--template-object. Parameters are passed as a single semicolon-delimited
string of KEY=VALUE pairs. The creation timeout is forwarded to the service,
it is not enforced locally.

Examples:
  stackctl create -f wordpress.json wordpress
  stackctl create -u http://templates.example/wordpress.json -P "DBUsername=admin;DBPassword=hunter2" wordpress
  stackctl create -o http://objects.example/v1/templates/wordpress.json -c 30 wordpress`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
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

		timeout, _ := cmd.Flags().GetInt("create-timeout")
		input := client.CreateStackInput{
			StackName:   name,
			TimeoutMins: timeout,
			Parameters:  parameters,
			Template:    fields.Template,
			TemplateURL: fields.TemplateURL,
		}

		if _, err := c.Create(ctx, input); err != nil {
			return err
		}

		return renderStackList(ctx, c, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	addTemplateFlags(createCmd)
	createCmd.Flags().IntP("create-timeout", "c", 60, "stack creation timeout in minutes")
	createCmd.Flags().StringP("parameters", "P", "", "parameter values used to create the stack, as KEY1=VALUE1;KEY2=VALUE2...")
}
