/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/orien/stackctl/internal/stack"
)

const defaultTimeout = 60 * time.Second

// Options holds configuration for creating an HTTP client
type Options struct {
	// Endpoint is the base URL of the orchestration service
	Endpoint string

	// Token is sent as X-Auth-Token on every request, if set
	Token string

	// Timeout bounds each HTTP round trip; zero means the default
	Timeout time.Duration
}

// HTTPClient implements Client over the service's HTTP/JSON API
type HTTPClient struct {
	endpoint string
	token    string
	hc       *http.Client
}

// NewHTTPClient creates a client for the service at opts.Endpoint
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("orchestration service endpoint is required")
	}
	if _, err := url.ParseRequestURI(opts.Endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", opts.Endpoint, err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &HTTPClient{
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
		token:    opts.Token,
		hc:       &http.Client{Timeout: timeout},
	}, nil
}

// stackEnvelope and stacksEnvelope match the service's response framing
type stackEnvelope struct {
	Stack *stack.Stack `json:"stack"`
}

type stacksEnvelope struct {
	Stacks []*stack.Stack `json:"stacks"`
}

// errorEnvelope is the body the service sends with non-2xx responses
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Create creates a new stack from the given input
func (c *HTTPClient) Create(ctx context.Context, input CreateStackInput) (*stack.Stack, error) {
	body, err := c.request(ctx, http.MethodPost, "/stacks", input)
	if err != nil {
		return nil, fmt.Errorf("failed to create stack %s: %w", input.StackName, err)
	}

	return decodeStack(body)
}

// Delete removes the stack identified by name or ID
func (c *HTTPClient) Delete(ctx context.Context, stackID string) error {
	_, err := c.request(ctx, http.MethodDelete, "/stacks/"+url.PathEscape(stackID), nil)
	if err != nil {
		if IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete stack %s: %w", stackID, err)
	}
	return nil
}

// Get retrieves the stack identified by name or ID
func (c *HTTPClient) Get(ctx context.Context, stackID string) (*stack.Stack, error) {
	body, err := c.request(ctx, http.MethodGet, "/stacks/"+url.PathEscape(stackID), nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get stack %s: %w", stackID, err)
	}

	envelope := stackEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode stack %s: %w", stackID, err)
	}
	if envelope.Stack == nil {
		return nil, fmt.Errorf("service returned no stack record for %s", stackID)
	}
	return envelope.Stack, nil
}

// Update applies new template and parameters to an existing stack
func (c *HTTPClient) Update(ctx context.Context, stackID string, input UpdateStackInput) error {
	_, err := c.request(ctx, http.MethodPut, "/stacks/"+url.PathEscape(stackID), input)
	if err != nil {
		if IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to update stack %s: %w", stackID, err)
	}
	return nil
}

// List returns all stacks visible to the caller
func (c *HTTPClient) List(ctx context.Context) ([]*stack.Stack, error) {
	body, err := c.request(ctx, http.MethodGet, "/stacks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list stacks: %w", err)
	}

	envelope := stacksEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode stack list: %w", err)
	}
	return envelope.Stacks, nil
}

// Template retrieves the template document of an existing stack
func (c *HTTPClient) Template(ctx context.Context, stackID string) (json.RawMessage, error) {
	body, err := c.request(ctx, http.MethodGet, "/stacks/"+url.PathEscape(stackID)+"/template", nil)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get template for stack %s: %w", stackID, err)
	}
	return json.RawMessage(body), nil
}

// Validate asks the service to validate a template with parameters
func (c *HTTPClient) Validate(ctx context.Context, input ValidateInput) (json.RawMessage, error) {
	body, err := c.request(ctx, http.MethodPost, "/validate", input)
	if err != nil {
		return nil, fmt.Errorf("template validation failed: %w", err)
	}
	return json.RawMessage(body), nil
}

// RawRequest performs a bare HTTP request against an absolute URL or a path
// relative to the service endpoint, returning the response body
func (c *HTTPClient) RawRequest(ctx context.Context, method, rawURL string) ([]byte, error) {
	target := rawURL
	if parsed, err := url.Parse(rawURL); err != nil || !parsed.IsAbs() {
		target = c.endpoint + "/" + strings.TrimLeft(rawURL, "/")
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", target, err)
	}

	if err := responseError(resp.StatusCode, target, body); err != nil {
		return nil, err
	}
	return body, nil
}

// request performs a JSON API call and returns the raw response body
func (c *HTTPClient) request(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	target := c.endpoint + path
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", target, err)
	}

	if err := responseError(resp.StatusCode, target, body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	}
}

// responseError maps a non-2xx status to a typed error. 404 becomes
// NotFoundError so handlers can translate it for the user.
func responseError(statusCode int, target string, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	if statusCode == http.StatusNotFound {
		return &NotFoundError{URL: target}
	}

	envelope := errorEnvelope{}
	_ = json.Unmarshal(body, &envelope)
	return &APIError{StatusCode: statusCode, Message: envelope.Error.Message}
}

// decodeStack unwraps a single-stack response, tolerating an empty body for
// operations where the service acknowledges without returning the record
func decodeStack(body []byte) (*stack.Stack, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	envelope := stackEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode stack record: %w", err)
	}
	return envelope.Stack, nil
}
