// Package errors provides centralized error definitions and error handling
// utilities for Sentinel. It defines sentinel errors for the supervisor's
// failure modes, a domain error type with context wrapping, and
// classification helpers used when deciding what to show the user.
//
// Only tooling failures are fatal: the absence of tmux aborts an operation,
// while every other condition (session already running, no performance data,
// a monitor that ignored its interrupt) is absorbed into a status message.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Tooling sentinel errors. These are the only fatal conditions: every
// supervisor operation requires a working session multiplexer.
var (
	// ErrTmuxNotFound indicates the tmux binary is not on PATH.
	ErrTmuxNotFound = New("tmux not found on PATH")
)

// Data sentinel errors
var (
	// ErrNoPIDFile indicates the PID marker file does not exist.
	ErrNoPIDFile = New("pid file not found")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// SupervisorError represents an error from a supervisor operation
// (start, stop, or status) with optional session/window context.
//
// Example:
//
//	err := errors.NewSupervisorError("failed to create session", cause).
//		WithSession("alert-monitor")
type SupervisorError struct {
	Operation string
	Session   string
	Window    string
	message   string
	cause     error
}

// NewSupervisorError creates a new SupervisorError.
func NewSupervisorError(message string, cause error) *SupervisorError {
	return &SupervisorError{
		message: message,
		cause:   cause,
	}
}

// WithOperation adds the operation name (start/stop/status) to the error context.
func (e *SupervisorError) WithOperation(op string) *SupervisorError {
	e.Operation = op
	return e
}

// WithSession adds the session name to the error context.
func (e *SupervisorError) WithSession(session string) *SupervisorError {
	e.Session = session
	return e
}

// WithWindow adds the window name to the error context.
func (e *SupervisorError) WithWindow(window string) *SupervisorError {
	e.Window = window
	return e
}

// Error returns the formatted error message.
func (e *SupervisorError) Error() string {
	var parts []string
	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Operation))
	}
	if e.Session != "" {
		parts = append(parts, fmt.Sprintf("session=%s", e.Session))
	}
	if e.Window != "" {
		parts = append(parts, fmt.Sprintf("window=%s", e.Window))
	}

	prefix := "supervisor error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("supervisor error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying error.
func (e *SupervisorError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *SupervisorError) Is(target error) bool {
	if _, ok := target.(*SupervisorError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsToolingMissing reports whether the error means the session multiplexer
// is unavailable. This is the one condition that aborts an operation with
// a non-zero exit; everything else degrades to an informational message.
func IsToolingMissing(err error) bool {
	return Is(err, ErrTmuxNotFound)
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to stop monitor")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
