package errors

import "errors"

// Exit codes returned by the create-creenv binary.
const (
	// ExitSuccess indicates the installation completed, possibly with warnings.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitUserAbort indicates the user refused to recreate the destination.
	ExitUserAbort = 2

	// ExitConnectivityError indicates the template could not be fetched.
	ExitConnectivityError = 3

	// ExitInstallError indicates the package manager failed.
	ExitInstallError = 4

	// ExitManifestError indicates the manifest could not be loaded or edited.
	ExitManifestError = 5

	// ExitDestinationError indicates the destination folder could not be prepared.
	ExitDestinationError = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUserAbort:
		return "User Abort"
	case ExitConnectivityError:
		return "Connectivity Error"
	case ExitInstallError:
		return "Install Error"
	case ExitManifestError:
		return "Manifest Error"
	case ExitDestinationError:
		return "Destination Error"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrUserAbort):
		return ExitUserAbort
	case errors.Is(err, ErrConnectivity):
		return ExitConnectivityError
	case errors.Is(err, ErrInstall):
		return ExitInstallError
	case errors.Is(err, ErrManifest):
		return ExitManifestError
	case errors.Is(err, ErrDestination):
		return ExitDestinationError
	default:
		return ExitGeneralError
	}
}
