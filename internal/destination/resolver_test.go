package destination

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/creenv/create-creenv/internal/errors"
)

// fakePrompter answers every confirmation with a fixed value and counts calls.
type fakePrompter struct {
	answer   bool
	err      error
	confirms int
}

func (f *fakePrompter) Prompt(string) (string, error) { return "", nil }

func (f *fakePrompter) Confirm(string) (bool, error) {
	f.confirms++
	return f.answer, f.err
}

func TestResolve_AbsentPathIsCreated(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := &fakePrompter{}

	require.NoError(t, NewResolver(fs, p).Resolve("projects/app"))

	info, err := fs.Stat("projects/app")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Zero(t, p.confirms, "no prompt for an absent path")
}

func TestResolve_DefaultPath(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, NewResolver(fs, &fakePrompter{}).Resolve(""))

	exists, err := afero.DirExists(fs, DefaultPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestResolve_EmptyFolderNoPrompt(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("app", 0o755))
	p := &fakePrompter{}

	require.NoError(t, NewResolver(fs, p).Resolve("app"))
	assert.Zero(t, p.confirms)
}

func TestResolve_NonEmptyConfirmed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app/old.txt", []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "app/nested/deep.txt", []byte("y"), 0o644))
	p := &fakePrompter{answer: true}

	require.NoError(t, NewResolver(fs, p).Resolve("app"))

	assert.Equal(t, 1, p.confirms, "exactly one prompt")
	empty, err := afero.IsEmpty(fs, "app")
	require.NoError(t, err)
	assert.True(t, empty, "folder recreated empty")
}

func TestResolve_NonEmptyRefused(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app/old.txt", []byte("keep me"), 0o644))
	p := &fakePrompter{answer: false}

	err := NewResolver(fs, p).Resolve("app")

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrUserAbort)
	assert.Equal(t, 1, p.confirms)

	data, err := afero.ReadFile(fs, "app/old.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data), "contents untouched")
}

func TestResolve_PromptError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app/old.txt", []byte("x"), 0o644))

	err := NewResolver(fs, &fakePrompter{err: errors.New("tty gone")}).Resolve("app")

	assert.ErrorIs(t, err, oerrors.ErrDestination)
	assert.NotErrorIs(t, err, oerrors.ErrUserAbort)
}

func TestResolve_RegularFileIsFatal(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app", []byte("file"), 0o644))
	p := &fakePrompter{answer: true}

	err := NewResolver(fs, p).Resolve("app")

	assert.ErrorIs(t, err, oerrors.ErrDestination)
	assert.Zero(t, p.confirms)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "app", detail.Location)
}

func TestResolve_ReadOnlyFilesystem(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := NewResolver(fs, &fakePrompter{}).Resolve("app")

	assert.ErrorIs(t, err, oerrors.ErrDestination)
}
