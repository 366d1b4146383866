/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/orien/stackctl/internal/client"
	"github.com/orien/stackctl/internal/config"
	"github.com/orien/stackctl/internal/output"
	"github.com/orien/stackctl/internal/template"
	"github.com/spf13/cobra"
)

var (
	// apiClient can be injected for testing
	apiClient client.Client
)

// getClient returns the API client, creating a default one from
// configuration if none is set
func getClient(cmd *cobra.Command) (client.Client, error) {
	if apiClient != nil {
		return apiClient, nil
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient, err := client.NewHTTPClient(client.Options{
		Endpoint: cfg.Endpoint,
		Token:    cfg.Token,
		Timeout:  cfg.Timeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	apiClient = httpClient
	return apiClient, nil
}

// SetClient allows injection of an API client (for testing)
func SetClient(c client.Client) {
	apiClient = c
}

// templateSource collects the three template flags of a command
func templateSource(cmd *cobra.Command) template.Source {
	file, _ := cmd.Flags().GetString("template-file")
	url, _ := cmd.Flags().GetString("template-url")
	object, _ := cmd.Flags().GetString("template-object")
	return template.Source{File: file, URL: url, Object: object}
}

// addTemplateFlags registers the template source flags shared by the
// commands that send a template to the service
func addTemplateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("template-file", "f", "", "path to the template")
	cmd.Flags().StringP("template-url", "u", "", "URL of the template")
	cmd.Flags().StringP("template-object", "o", "", "URL to retrieve the template object from (e.g. an object store)")
}

// renderStackList prints the current stack listing, the shared post-action
// of the commands that change stacks
func renderStackList(ctx context.Context, c client.Client, out io.Writer) error {
	stacks, err := c.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, output.StackTable(stacks))
	return nil
}
