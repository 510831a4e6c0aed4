package cmd

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/creenv/create-creenv/internal/output"
)

// userShell returns the interactive shell to start for --open.
func userShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}
	return "/bin/sh"
}

// openShell runs an interactive shell in dir attached to the terminal and
// returns when the user exits it.
func openShell(cmd *cobra.Command, dir string) error {
	shell := userShell()
	output.Info("opening a shell in the project, exit it to return", "shell", shell)

	c := exec.CommandContext(cmd.Context(), shell)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
