package vcs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// MetadataDir is the folder holding a clone's git metadata.
const MetadataDir = ".git"

// StripMetadata removes the git metadata folder from dir so the scaffolded
// project does not point at the template's history. Removing an absent folder
// succeeds.
func StripMetadata(fs afero.Fs, dir string) error {
	path := filepath.Join(dir, MetadataDir)
	if err := fs.RemoveAll(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
