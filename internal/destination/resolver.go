// Package destination prepares the folder a project is scaffolded into.
package destination

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	oerrors "github.com/creenv/create-creenv/internal/errors"
	"github.com/creenv/create-creenv/internal/output"
)

// DefaultPath is used when no destination argument is given.
const DefaultPath = "creenv"

// ConfirmRecreate is the question asked before a non-empty folder is wiped.
const ConfirmRecreate = "The folder already exists and is not empty. Delete its content and continue? [y/N]: "

// Resolver ensures a destination folder exists and is empty.
type Resolver struct {
	fs       afero.Fs
	prompter output.Prompter
}

// NewResolver creates a Resolver operating on fs and asking confirmations
// through prompter.
func NewResolver(fs afero.Fs, prompter output.Prompter) *Resolver {
	return &Resolver{fs: fs, prompter: prompter}
}

// Resolve makes path a usable empty folder.
//
// An absent path is created with its parents. An empty folder is used as is.
// A non-empty folder triggers exactly one confirmation: on yes its content is
// removed, otherwise ErrUserAbort is returned and nothing is touched.
func (r *Resolver) Resolve(path string) error {
	if path == "" {
		path = DefaultPath
	}

	info, err := r.fs.Stat(path)
	switch {
	case os.IsNotExist(err):
		output.Debug("destination does not exist", "path", path)
		return r.create(path)
	case err != nil:
		return oerrors.NewDestinationError("cannot inspect destination", path, "", err)
	case !info.IsDir():
		return oerrors.NewDestinationError(
			"destination exists and is not a folder", path,
			"choose another destination or remove the file",
			fmt.Errorf("not a directory"),
		)
	}

	empty, err := afero.IsEmpty(r.fs, path)
	if err != nil {
		return oerrors.NewDestinationError("cannot read destination", path, "", err)
	}
	if empty {
		output.Info("folder already existing, using it", "path", path)
		return nil
	}

	output.Warn("folder already existing and not empty", "path", path)
	ok, err := r.prompter.Confirm(ConfirmRecreate)
	if err != nil {
		return oerrors.NewDestinationError("reading confirmation", path, "", err)
	}
	if !ok {
		return oerrors.Wrap(oerrors.ErrUserAbort, fmt.Sprintf("keeping %s untouched", path))
	}

	if err := r.fs.RemoveAll(path); err != nil {
		return oerrors.NewDestinationError("cannot delete destination content", path, "check the folder permissions", err)
	}
	output.Info("folder content deleted", "path", path)
	return r.create(path)
}

func (r *Resolver) create(path string) error {
	if err := r.fs.MkdirAll(path, 0o755); err != nil {
		return oerrors.NewDestinationError("cannot create destination", path, "check the parent folder permissions", err)
	}
	output.Info("folder created", "path", path)
	return nil
}
