// Package install runs the package manager inside a scaffolded project.
package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	oerrors "github.com/creenv/create-creenv/internal/errors"
	"github.com/creenv/create-creenv/internal/output"
)

// Installer runs a package manager command in a project folder.
type Installer struct {
	// Command is the package manager executable. If empty, "npm" is used.
	Command string

	// Args are passed to Command. If empty, "install" is used.
	Args []string

	// Stream receives the command output as it is produced, in addition to
	// the captured copy. Nil disables streaming.
	Stream io.Writer
}

// NewInstaller creates an Installer for command with args.
func NewInstaller(command string, args []string, stream io.Writer) *Installer {
	return &Installer{Command: command, Args: args, Stream: stream}
}

// Install runs the command with dir as its working directory and returns the
// combined stdout and stderr. The calling process's working directory is not
// changed.
func (i *Installer) Install(ctx context.Context, dir string) (string, error) {
	command := i.command()
	args := i.args()
	line := strings.Join(append([]string{command}, args...), " ")

	path, err := exec.LookPath(command)
	if err != nil {
		return "", oerrors.NewInstallError(
			fmt.Sprintf("%s: command not found", command), dir,
			fmt.Sprintf("install %s or choose another one with --package-manager", command),
			err,
		)
	}

	var captured bytes.Buffer
	var w io.Writer = &captured
	if i.Stream != nil {
		w = io.MultiWriter(&captured, i.Stream)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = w
	cmd.Stderr = w

	output.Debug("running package manager", "command", line, "dir", dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return captured.String(), oerrors.NewInstallError(
				fmt.Sprintf("%s failed with exit code %d", line, exitErr.ExitCode()), dir,
				"run the command manually in the project folder to see the full output",
				err,
			)
		}
		return captured.String(), oerrors.NewInstallError(fmt.Sprintf("%s: %v", line, err), dir, "", err)
	}

	return captured.String(), nil
}

func (i *Installer) command() string {
	if i.Command != "" {
		return i.Command
	}
	return "npm"
}

func (i *Installer) args() []string {
	if len(i.Args) > 0 {
		return i.Args
	}
	return []string{"install"}
}
