/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package client talks to the orchestration service's REST API.
package client

import (
	"context"
	"encoding/json"

	"github.com/orien/stackctl/internal/stack"
)

// Client defines the operations exposed by the orchestration service
type Client interface {
	// Create creates a new stack from the given input
	Create(ctx context.Context, input CreateStackInput) (*stack.Stack, error)

	// Delete removes the stack identified by name or ID
	Delete(ctx context.Context, stackID string) error

	// Get retrieves the stack identified by name or ID
	Get(ctx context.Context, stackID string) (*stack.Stack, error)

	// Update applies new template and parameters to an existing stack
	Update(ctx context.Context, stackID string, input UpdateStackInput) error

	// List returns all stacks visible to the caller
	List(ctx context.Context) ([]*stack.Stack, error)

	// Template retrieves the template document of an existing stack
	Template(ctx context.Context, stackID string) (json.RawMessage, error)

	// Validate asks the service to validate a template with parameters
	Validate(ctx context.Context, input ValidateInput) (json.RawMessage, error)

	// RawRequest performs a bare HTTP request and returns the response body.
	// The URL may be absolute (e.g. an object store location) or relative to
	// the service endpoint.
	RawRequest(ctx context.Context, method, url string) ([]byte, error)
}

// CreateStackInput contains the fields of a stack creation request
type CreateStackInput struct {
	StackName   string            `json:"stack_name"`
	TimeoutMins int               `json:"timeoutmins"`
	Parameters  map[string]string `json:"parameters"`
	Template    json.RawMessage   `json:"template,omitempty"`
	TemplateURL string            `json:"template_url,omitempty"`
}

// UpdateStackInput contains the fields of a stack update request
type UpdateStackInput struct {
	Parameters  map[string]string `json:"parameters"`
	Template    json.RawMessage   `json:"template,omitempty"`
	TemplateURL string            `json:"template_url,omitempty"`
}

// ValidateInput contains the fields of a template validation request
type ValidateInput struct {
	Parameters  map[string]string `json:"parameters"`
	Template    json.RawMessage   `json:"template,omitempty"`
	TemplateURL string            `json:"template_url,omitempty"`
}
