//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrUserAbort, ErrDestination, ErrConnectivity, ErrInstall, ErrManifest}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotEqual(t, a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "fetch failed",
		Message:  "could not clone the template",
		Location: "creenv",
		Context:  map[string]string{"Template": "demo"},
		Hint:     "Check your internet connection",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: fetch failed")
	assert.Contains(t, output, "Location: creenv")
	assert.Contains(t, output, "Template: demo")
	assert.Contains(t, output, "could not clone the template")
	assert.Contains(t, output, "Hint: Check your internet connection")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrInstall,
	}

	assert.True(t, errors.Is(detail, ErrInstall))
	assert.Equal(t, ErrInstall, detail.Unwrap())
}

func TestNewConnectivityError(t *testing.T) {
	cause := errors.New("dial tcp: no route to host")
	err := NewConnectivityError("could not clone", map[string]string{"URL": "https://example.com/t.git"}, "check connectivity", cause)

	assert.True(t, errors.Is(err, ErrConnectivity))
	assert.True(t, errors.Is(err, cause))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "fetch failed", detail.Type)
	assert.Equal(t, "check connectivity", detail.Hint)
}

func TestNewDestinationError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewDestinationError("cannot create folder", "/root/x", "", cause)

	assert.True(t, errors.Is(err, ErrDestination))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ExitDestinationError, ExitCodeFromError(err))
}

func TestNewInstallAndManifestErrors(t *testing.T) {
	cause := errors.New("exit status 1")

	install := NewInstallError("npm install failed", "app", "", cause)
	assert.True(t, errors.Is(install, ErrInstall))
	assert.Equal(t, ExitInstallError, ExitCodeFromError(install))

	manifest := NewManifestError("cannot parse package.json", "app/package.json", "", cause)
	assert.True(t, errors.Is(manifest, ErrManifest))
	assert.Equal(t, ExitManifestError, ExitCodeFromError(manifest))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrManifest, "package.json unreadable")

	assert.True(t, errors.Is(wrapped, ErrManifest))
	assert.Contains(t, wrapped.Error(), "package.json unreadable")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"user abort", ErrUserAbort, ExitUserAbort},
		{"connectivity", ErrConnectivity, ExitConnectivityError},
		{"install", ErrInstall, ExitInstallError},
		{"manifest", ErrManifest, ExitManifestError},
		{"destination", ErrDestination, ExitDestinationError},
		{"wrapped install", fmt.Errorf("npm install: %w", ErrInstall), ExitInstallError},
		{"unknown error", errors.New("boom"), ExitGeneralError},
		{"exit error with custom code", NewExitError(errors.New("custom"), 42), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	originalErr := errors.New("original error")
	exitErr := NewExitError(originalErr, ExitInstallError)

	t.Run("Error returns wrapped error message", func(t *testing.T) {
		assert.Equal(t, "original error", exitErr.Error())
	})

	t.Run("Unwrap returns original error", func(t *testing.T) {
		assert.Equal(t, originalErr, errors.Unwrap(exitErr))
	})

	t.Run("nil Err falls back to code name", func(t *testing.T) {
		assert.Equal(t, "User Abort", (&ExitError{Code: ExitUserAbort}).Error())
	})
}

func TestExitCodeName(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{ExitSuccess, "Success"},
		{ExitGeneralError, "General Error"},
		{ExitUserAbort, "User Abort"},
		{ExitConnectivityError, "Connectivity Error"},
		{ExitInstallError, "Install Error"},
		{ExitManifestError, "Manifest Error"},
		{ExitDestinationError, "Destination Error"},
		{999, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeName(tt.code))
		})
	}
}
