/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"testing"
	"time"

	"github.com/orien/stackctl/internal/client"
	"github.com/orien/stackctl/internal/errs"
	"github.com/orien/stackctl/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDescribeCommand_Exists(t *testing.T) {
	describeCmd := findCommand(rootCmd, "describe")

	require.NotNil(t, describeCmd, "describe command should be registered")
	assert.Equal(t, "describe <NAME/ID>", describeCmd.Use)
}

func TestDescribeCommand_PrintsStackDetail(t *testing.T) {
	mockClient := withMockClient(t)

	mockClient.On("Get", mock.Anything, "wordpress").Return(&stack.Stack{
		ID:           "abc123",
		Name:         "wordpress",
		Status:       "CREATE_COMPLETE",
		CreationTime: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
		Description:  "blog tier",
		Parameters:   map[string]string{"DBUsername": "admin"},
		Links: []stack.Link{
			{Href: "http://orchestration.example/v1/stacks/wordpress/abc123", Rel: "self"},
		},
	}, nil)

	output, err := executeCommand(t, "describe", "wordpress")

	require.NoError(t, err)
	assert.Contains(t, output, "abc123")
	assert.Contains(t, output, "wordpress")
	assert.Contains(t, output, "CREATE_COMPLETE")
	assert.Contains(t, output, "blog tier")
	assert.Contains(t, output, `"DBUsername": "admin"`)
	assert.Contains(t, output, "http://orchestration.example/v1/stacks/wordpress/abc123")
	mockClient.AssertExpectations(t)
}

func TestDescribeCommand_NotFound(t *testing.T) {
	mockClient := withMockClient(t)

	mockClient.On("Get", mock.Anything, "missing").
		Return(nil, &client.NotFoundError{URL: "http://orchestration.example/v1/stacks/missing"})

	_, err := executeCommand(t, "describe", "missing")

	require.Error(t, err)
	assert.Equal(t, "Stack not found: missing", err.Error())
	assert.True(t, errs.IsCommandError(err))
}

func TestDescribeCommand_RequiresID(t *testing.T) {
	mockClient := withMockClient(t)

	_, err := executeCommand(t, "describe")

	assert.Error(t, err)
	mockClient.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
