/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package errs defines the user-facing error kind shared by command handlers.
package errs

import (
	"errors"
	"fmt"
)

// CommandError is a user-input or usage failure. The outer driver prints its
// message and exits non-zero without a stack trace; anything else bubbles
// unmodified.
type CommandError struct {
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// CommandErrorf creates a CommandError with a formatted message
func CommandErrorf(format string, args ...any) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...)}
}

// IsCommandError reports whether err is (or wraps) a CommandError
func IsCommandError(err error) bool {
	var ce *CommandError
	return errors.As(err, &ce)
}
