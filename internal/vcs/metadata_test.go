package vcs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMetadata(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app/.git/HEAD", []byte("ref: refs/heads/master\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "app/package.json", []byte("{}"), 0o644))

	require.NoError(t, StripMetadata(fs, "app"))

	exists, err := afero.DirExists(fs, "app/.git")
	require.NoError(t, err)
	assert.False(t, exists)

	kept, err := afero.Exists(fs, "app/package.json")
	require.NoError(t, err)
	assert.True(t, kept, "project files are kept")
}

func TestStripMetadata_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app/.git/HEAD", []byte("x"), 0o644))

	assert.NoError(t, StripMetadata(fs, "app"))
	assert.NoError(t, StripMetadata(fs, "app"), "second run succeeds")
}

func TestStripMetadata_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "app/.git/HEAD", []byte("x"), 0o644))

	err := StripMetadata(afero.NewReadOnlyFs(base), "app")
	assert.Error(t, err)
}
