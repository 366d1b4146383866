/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package client

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the service returned 404 for the requested resource.
// Handlers match it to produce a friendlier message than the raw API failure.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// APIError is a non-2xx response other than 404. It carries the HTTP status
// and whatever error message the service body contained.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("orchestration service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("orchestration service returned status %d: %s", e.StatusCode, e.Message)
}
