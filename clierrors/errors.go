// Package clierrors provides structured CLI error types for nyancat.
//
// CLIError wraps errors with user-facing messages, hints, and exit codes
// so every failure before the animation starts is reported the same way.
package clierrors

import (
	"errors"
	"fmt"
)

// Exit codes for CLI errors.
const (
	ExitSuccess = 0  // Successful execution
	ExitGeneral = 1  // General error
	ExitConfig  = 4  // Configuration error
	ExitUsage   = 64 // Command line usage error (BSD convention)
)

// CLIError represents a user-facing CLI error with actionable guidance.
type CLIError struct {
	// Message is the primary error message shown to the user.
	Message string

	// Hint provides actionable guidance on how to fix the error.
	Hint string

	// Cause is the underlying error, if any.
	Cause error

	// Code is the exit code for the CLI.
	Code int
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// New creates a new CLIError with the given message and exit code.
func New(code int, message string) *CLIError {
	return &CLIError{
		Message: message,
		Code:    code,
	}
}

// Wrap wraps an existing error with a CLIError.
func Wrap(code int, message string, cause error) *CLIError {
	return &CLIError{
		Message: message,
		Cause:   cause,
		Code:    code,
	}
}

// WithHint adds a hint to the error.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// As is a convenience function for errors.As with CLIError.
func As(err error, target **CLIError) bool {
	return errors.As(err, target)
}

// ExitCode maps any error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *CLIError
	if As(err, &cliErr) {
		return cliErr.Code
	}

	return ExitGeneral
}

// --- Common error constructors ---

// InvalidConfig returns an error for configuration values that fail validation.
func InvalidConfig(cause error) *CLIError {
	return &CLIError{
		Message: "Invalid configuration",
		Hint:    "Check flags, NYANCAT_* environment variables, and the config file",
		Cause:   cause,
		Code:    ExitConfig,
	}
}

// InvalidLogging returns an error for an unusable logging setup.
func InvalidLogging(cause error) *CLIError {
	return &CLIError{
		Message: "Invalid logging configuration",
		Hint:    "Use --log-level (error|warn|info|debug) and a writable --log-file",
		Cause:   cause,
		Code:    ExitUsage,
	}
}

// CorruptAsset returns an error for an embedded animation that fails to parse.
func CorruptAsset(cause error) *CLIError {
	return &CLIError{
		Message: "Animation frames are corrupt",
		Cause:   cause,
		Code:    ExitGeneral,
	}
}
