/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package client

import (
	"context"
	"encoding/json"

	"github.com/orien/stackctl/internal/stack"
	"github.com/stretchr/testify/mock"
)

// MockClient implements Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Create(ctx context.Context, input CreateStackInput) (*stack.Stack, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stack.Stack), args.Error(1)
}

func (m *MockClient) Delete(ctx context.Context, stackID string) error {
	args := m.Called(ctx, stackID)
	return args.Error(0)
}

func (m *MockClient) Get(ctx context.Context, stackID string) (*stack.Stack, error) {
	args := m.Called(ctx, stackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stack.Stack), args.Error(1)
}

func (m *MockClient) Update(ctx context.Context, stackID string, input UpdateStackInput) error {
	args := m.Called(ctx, stackID, input)
	return args.Error(0)
}

func (m *MockClient) List(ctx context.Context) ([]*stack.Stack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stack.Stack), args.Error(1)
}

func (m *MockClient) Template(ctx context.Context, stackID string) (json.RawMessage, error) {
	args := m.Called(ctx, stackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockClient) Validate(ctx context.Context, input ValidateInput) (json.RawMessage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockClient) RawRequest(ctx context.Context, method, url string) ([]byte, error) {
	args := m.Called(ctx, method, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
