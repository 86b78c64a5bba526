// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

// Package clierr provides error classification and user-friendly error formatting for the CLI.
// It helps distinguish between different error types and provides actionable hints.
package clierr

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/monadic/minihabit/pkg/wizard"
)

// Common error types for CLI output.
const (
	TypeValidation = "validation" // Input validation errors
	TypeCancelled  = "cancelled"  // User left the wizard
	TypeTerminal   = "terminal"   // No usable terminal
	TypeIO         = "io"         // File system errors
	TypeInternal   = "internal"   // Internal/unexpected errors
)

// IsCancelled checks if the error means the user aborted the session.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// IsTerminalError checks if the error comes from a missing or unusable TTY.
func IsTerminalError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "/dev/tty") ||
		strings.Contains(msg, "not a terminal") ||
		strings.Contains(msg, "inappropriate ioctl") ||
		strings.Contains(msg, "could not open a new tty")
}

// IsIOError checks if the error is a file system error.
func IsIOError(err error) bool {
	if err == nil {
		return false
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, fs.ErrNotExist)
}

// ClassifyError determines the type of error for appropriate handling.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := wizard.AsValidationFailure(err); ok {
		return TypeValidation
	}
	if IsCancelled(err) {
		return TypeCancelled
	}
	if IsTerminalError(err) {
		return TypeTerminal
	}
	if IsIOError(err) {
		return TypeIO
	}
	return TypeInternal
}

// Pretty formats an error with a user-friendly message and actionable hints.
func Pretty(err error) string {
	if err == nil {
		return ""
	}

	errType := ClassifyError(err)
	baseMsg := err.Error()

	switch errType {
	case TypeValidation:
		return fmt.Sprintf("Invalid answer: %s", baseMsg)

	case TypeCancelled:
		return "Wizard cancelled. Nothing was saved."

	case TypeTerminal:
		return fmt.Sprintf("Terminal error: %s\n\nHint: The interactive wizard needs a terminal.\n"+
			"  - Run it directly in a terminal, not through a pipe\n"+
			"  - Or use --accessible for line-by-line prompts", baseMsg)

	case TypeIO:
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Sprintf("Permission denied: %s\n\nHint: Choose a writable path:\n"+
				"  - --output ./plan.yaml\n"+
				"  - --log-dir or MINIHABIT_LOG_DIR for the session log", baseMsg)
		}
		return fmt.Sprintf("File error: %s", baseMsg)

	default:
		return fmt.Sprintf("Error: %s", baseMsg)
	}
}

// WrapWithHint wraps an error with an additional hint message.
func WrapWithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\n\nHint: %s", err, hint)
}

// Unwrap returns the underlying error, stripping any wrapper.
func Unwrap(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
