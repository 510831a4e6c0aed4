package install

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/creenv/create-creenv/internal/errors"
)

func TestInstall_RunsInProjectDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)

	out, err := NewInstaller("sh", []string{"-c", "pwd; touch installed"}, nil).
		Install(context.Background(), dir)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "installed"))
	assert.Contains(t, out, filepath.Base(dir))

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, after, "process working directory is unchanged")
}

func TestInstall_StreamsOutput(t *testing.T) {
	var stream bytes.Buffer

	out, err := NewInstaller("sh", []string{"-c", "echo added 42 packages; echo warn >&2"}, &stream).
		Install(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "added 42 packages")
	assert.Contains(t, out, "warn")
	assert.Equal(t, out, stream.String())
}

func TestInstall_NonZeroExit(t *testing.T) {
	out, err := NewInstaller("sh", []string{"-c", "echo boom; exit 3"}, nil).
		Install(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrInstall)
	assert.Contains(t, err.Error(), "exit code 3")
	assert.Contains(t, out, "boom", "captured output is returned with the error")
}

func TestInstall_MissingCommand(t *testing.T) {
	_, err := NewInstaller("creenv-no-such-package-manager", nil, nil).
		Install(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrInstall)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Contains(t, detail.Hint, "creenv-no-such-package-manager")
}

func TestInstall_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewInstaller("sh", []string{"-c", "sleep 5"}, nil).Install(ctx, t.TempDir())
	assert.ErrorIs(t, err, oerrors.ErrInstall)
}

func TestInstaller_Defaults(t *testing.T) {
	i := &Installer{}
	assert.Equal(t, "npm", i.command())
	assert.Equal(t, []string{"install"}, i.args())
}
