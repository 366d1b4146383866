/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/orien/stackctl/internal/client"
	"github.com/orien/stackctl/internal/errs"
	"github.com/orien/stackctl/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommand_Exists(t *testing.T) {
	deleteCmd := findCommand(rootCmd, "delete")

	require.NotNil(t, deleteCmd, "delete command should be registered")
	assert.Equal(t, "delete <NAME/ID>", deleteCmd.Use)
}

func TestDeleteCommand_RequiresID(t *testing.T) {
	mockClient := withMockClient(t)

	_, err := executeCommand(t, "delete")

	assert.Error(t, err)
	mockClient.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteCommand_DeletesAndLists(t *testing.T) {
	mockClient := withMockClient(t)

	mockClient.On("Delete", mock.Anything, "wordpress").Return(nil)
	mockClient.On("List", mock.Anything).Return([]*stack.Stack{
		{ID: "2", Name: "other", Status: "CREATE_COMPLETE", CreationTime: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)},
	}, nil)

	output, err := executeCommand(t, "delete", "wordpress")

	require.NoError(t, err)
	assert.Contains(t, output, "other/2")
	mockClient.AssertExpectations(t)
}

func TestDeleteCommand_NotFound(t *testing.T) {
	mockClient := withMockClient(t)

	mockClient.On("Delete", mock.Anything, "missing").
		Return(&client.NotFoundError{URL: "http://orchestration.example/v1/stacks/missing"})

	_, err := executeCommand(t, "delete", "missing")

	require.Error(t, err)
	assert.Equal(t, "Stack not found: missing", err.Error())
	assert.True(t, errs.IsCommandError(err))
	mockClient.AssertNotCalled(t, "List", mock.Anything)
}

func TestDeleteCommand_OtherErrorsPropagate(t *testing.T) {
	mockClient := withMockClient(t)

	mockClient.On("Delete", mock.Anything, "wordpress").Return(errors.New("service unavailable"))

	_, err := executeCommand(t, "delete", "wordpress")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service unavailable")
	assert.False(t, errs.IsCommandError(err))
}
