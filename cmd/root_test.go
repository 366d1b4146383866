/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findCommand locates a registered subcommand by name
func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCmd_Structure(t *testing.T) {
	// Test basic command properties
	assert.Equal(t, "stackctl", rootCmd.Use)
	assert.Equal(t, "A command-line client for template-driven orchestration services", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	// Test that the long description contains expected content
	assert.Contains(t, rootCmd.Long, "Stackctl is a CLI client")
	assert.Contains(t, rootCmd.Long, "Create, update and delete stacks")
	assert.Contains(t, rootCmd.Long, "Validate templates server-side")
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "stackctl.yaml", configFlag.DefValue)

	endpointFlag := flags.Lookup("endpoint")
	require.NotNil(t, endpointFlag)
	assert.Contains(t, endpointFlag.Usage, "orchestration service endpoint")
}

func TestRootCmd_Subcommands(t *testing.T) {
	// Every verb of the CLI surface is registered
	for _, name := range []string{"create", "delete", "describe", "update", "list", "gettemplate", "validate"} {
		assert.NotNil(t, findCommand(rootCmd, name), "command %s should be registered", name)
	}
}

func TestRootCmd_GetTemplateAlias(t *testing.T) {
	getTemplate := findCommand(rootCmd, "gettemplate")
	require.NotNil(t, getTemplate)
	assert.Contains(t, getTemplate.Aliases, "get-template")
}

func TestRootCmd_Help(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()

	assert.NoError(t, err)

	helpOutput := buf.String()
	assert.Contains(t, helpOutput, "stackctl")
	assert.Contains(t, helpOutput, "Available Commands:")
	assert.Contains(t, helpOutput, "create")
	assert.Contains(t, helpOutput, "validate")
	assert.Contains(t, helpOutput, "--config")
	assert.Contains(t, helpOutput, "--endpoint")
}

func TestRootCmd_InvalidFlag(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()
	rootCmd.SetArgs([]string{"--no-such-flag"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(buf.String()), "unknown flag")
}

func TestRootCmd_FlagInheritance(t *testing.T) {
	// Persistent flags are available to subcommands
	createCmd := findCommand(rootCmd, "create")
	require.NotNil(t, createCmd)

	inherited := createCmd.InheritedFlags()
	assert.NotNil(t, inherited.Lookup("config"))
	assert.NotNil(t, inherited.Lookup("endpoint"))
}
