/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/orien/stackctl/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCommand_Exists(t *testing.T) {
	listCmd := findCommand(rootCmd, "list")

	require.NotNil(t, listCmd, "list command should be registered")
	assert.Equal(t, "list", listCmd.Use)
}

func TestListCommand_RejectsArguments(t *testing.T) {
	mockClient := withMockClient(t)

	_, err := executeCommand(t, "list", "unexpected")

	assert.Error(t, err)
	mockClient.AssertNotCalled(t, "List", mock.Anything)
}

func TestListCommand_RendersSortedTable(t *testing.T) {
	mockClient := withMockClient(t)

	// Returned out of order; the table sorts ascending by creation time
	mockClient.On("List", mock.Anything).Return([]*stack.Stack{
		{ID: "2", Name: "newer", Status: "CREATE_COMPLETE", CreationTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "1", Name: "older", Status: "UPDATE_COMPLETE", CreationTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	output, err := executeCommand(t, "list")

	require.NoError(t, err)
	assert.Contains(t, output, "Name/ID")
	assert.Contains(t, output, "older/1")
	assert.Contains(t, output, "newer/2")
	assert.Less(t, strings.Index(output, "older/1"), strings.Index(output, "newer/2"))
	mockClient.AssertExpectations(t)
}

func TestListCommand_ErrorsPropagate(t *testing.T) {
	mockClient := withMockClient(t)

	mockClient.On("List", mock.Anything).Return(nil, errors.New("service unavailable"))

	_, err := executeCommand(t, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service unavailable")
}
