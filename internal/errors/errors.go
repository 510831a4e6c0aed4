// Package errors provides sentinel errors and structured error types for the
// create-creenv CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrUserAbort indicates the user refused to continue at a confirmation prompt.
	ErrUserAbort = errors.New("aborted by user")

	// ErrDestination indicates the destination folder could not be prepared.
	ErrDestination = errors.New("destination error")

	// ErrConnectivity indicates the template repository could not be fetched.
	ErrConnectivity = errors.New("connectivity error")

	// ErrInstall indicates the package manager failed.
	ErrInstall = errors.New("install error")

	// ErrManifest indicates the project manifest could not be loaded or edited.
	ErrManifest = errors.New("manifest error")
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or folder involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewDestinationError creates a destination error with details.
func NewDestinationError(message, location, hint string, cause error) error {
	return &DetailError{
		Type:     "destination unavailable",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    fmt.Errorf("%w: %w", ErrDestination, cause),
	}
}

// NewConnectivityError creates a connectivity error with details.
func NewConnectivityError(message string, context map[string]string, hint string, cause error) error {
	return &DetailError{
		Type:    "fetch failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   fmt.Errorf("%w: %w", ErrConnectivity, cause),
	}
}

// NewInstallError creates a dependency installation error with details.
func NewInstallError(message, location, hint string, cause error) error {
	return &DetailError{
		Type:     "dependency installation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    fmt.Errorf("%w: %w", ErrInstall, cause),
	}
}

// NewManifestError creates a manifest error with details.
func NewManifestError(message, location, hint string, cause error) error {
	return &DetailError{
		Type:     "manifest error",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    fmt.Errorf("%w: %w", ErrManifest, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
