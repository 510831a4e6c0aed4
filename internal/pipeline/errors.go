package pipeline

import (
	"fmt"
)

// Kind classifies a stage failure.
type Kind int

const (
	// UserAbort means the user refused to recreate a non-empty destination.
	UserAbort Kind = iota + 1
	// DestinationFailure means the destination could not be created or cleared.
	DestinationFailure
	// FetchFailure means the template could not be cloned.
	FetchFailure
	// InstallFailure means the package manager failed.
	InstallFailure
	// CleanupWarning means the git metadata could not be removed.
	CleanupWarning
	// ManifestFailure means the manifest could not be loaded or the answers
	// could not be read.
	ManifestFailure
	// ManifestWriteFailure means the edited manifest could not be saved.
	ManifestWriteFailure
	// PostProcessFailure means comment removal stopped early.
	PostProcessFailure
)

func (k Kind) String() string {
	switch k {
	case UserAbort:
		return "user abort"
	case DestinationFailure:
		return "destination failure"
	case FetchFailure:
		return "fetch failure"
	case InstallFailure:
		return "install failure"
	case CleanupWarning:
		return "cleanup warning"
	case ManifestFailure:
		return "manifest failure"
	case ManifestWriteFailure:
		return "manifest write failure"
	case PostProcessFailure:
		return "post-process failure"
	default:
		return "unknown failure"
	}
}

// Fatal reports whether a failure of this kind aborts the pipeline.
func (k Kind) Fatal() bool {
	switch k {
	case CleanupWarning, ManifestWriteFailure, PostProcessFailure:
		return false
	default:
		return true
	}
}

// Hint returns guidance shown to the user for this kind of failure.
func (k Kind) Hint() string {
	switch k {
	case FetchFailure:
		return "check your internet connection and try again"
	case InstallFailure:
		return "run the package manager manually in the project folder"
	case CleanupWarning:
		return "remove the .git folder manually or change the git remote of the project"
	case ManifestWriteFailure:
		return "edit package.json manually to set the project metadata"
	case PostProcessFailure:
		return "some source files may still contain comments"
	case DestinationFailure:
		return "check the destination path and its permissions"
	default:
		return ""
	}
}

// StageError is the failure of a single stage.
type StageError struct {
	// Kind classifies the failure.
	Kind Kind

	// Stage is the state the pipeline was in.
	Stage State

	// Err is the underlying error.
	Err error

	// Output is the captured output of an external command, if any.
	Output string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Fatal reports whether the error aborts the pipeline.
func (e *StageError) Fatal() bool {
	return e.Kind.Fatal()
}
