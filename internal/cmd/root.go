// Package cmd provides the create-creenv command.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/creenv/create-creenv/internal/config"
	oerrors "github.com/creenv/create-creenv/internal/errors"
	"github.com/creenv/create-creenv/internal/install"
	"github.com/creenv/create-creenv/internal/output"
	"github.com/creenv/create-creenv/internal/pipeline"
	"github.com/creenv/create-creenv/internal/templates"
	"github.com/creenv/create-creenv/internal/vcs"
	"github.com/creenv/create-creenv/internal/version"
)

// Deps are the collaborators wired into the pipeline. Nil fields are replaced
// with the real implementations once the configuration is loaded.
type Deps struct {
	Fs        afero.Fs
	Prompter  output.Prompter
	Cloner    pipeline.Cloner
	Installer pipeline.Installer

	// OpenShell starts an interactive shell in dir for --open.
	OpenShell func(cmd *cobra.Command, dir string) error
}

// rootOptions holds the flag values of one command invocation.
type rootOptions struct {
	mode            string
	noComment       bool
	open            bool
	templateVersion string
	packageManager  string
	configPath      string
	verbose         bool
	timestamps      bool

	global config.GlobalConfig
}

// NewRootCmd creates the create-creenv command.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the create-creenv command with the given
// collaborators.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	opts := &rootOptions{}
	registry := templates.NewRegistry()

	rootCmd := &cobra.Command{
		Use:   "create-creenv [destination]",
		Short: "Scaffold a new creenv project",
		Long: fmt.Sprintf(`Scaffold a new creenv project from a template.

The template is cloned into the destination folder (default %q), its
dependencies are installed, its git history is removed and package.json is
rewritten with the project name, description and author you are asked for.

Modes:
%s
The command asks questions on stdin and waits for the answers; it cannot run
unattended.

Examples:
  # Create ./creenv from the default template
  create-creenv

  # Create ./my-sketch from the demo template without comments
  create-creenv my-sketch --mode demo --nocomment

  # Use yarn and a specific template version, then open a shell
  create-creenv my-sketch --package-manager yarn -V v1.2.0 --open`,
			"creenv", describeModes(registry)),
		Version:       version.GetInfo().Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, opts, deps, registry)
		},
	}
	rootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.mode, "mode", "m", templates.DefaultMode,
		fmt.Sprintf("Template to use (%s)", strings.Join(registry.Names(), ", ")))
	flags.BoolVarP(&opts.noComment, "nocomment", "n", false, "Remove comments from the project sources")
	flags.BoolVarP(&opts.open, "open", "o", false, "Open a shell in the project once it is created")
	flags.StringVarP(&opts.templateVersion, "template-version", "V", "", "Template branch or tag to clone")
	flags.StringVar(&opts.packageManager, "package-manager", "",
		fmt.Sprintf("Command used to install dependencies (env: %s, default: %s)", config.EnvPackageManager, config.DefaultPackageManager))
	flags.StringVar(&opts.configPath, "config", "", fmt.Sprintf("Path to config file (env: %s)", config.EnvConfig))
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable verbose output")
	flags.BoolVar(&opts.timestamps, "timestamps", true, "Show timestamps in log output")

	return rootCmd
}

// initializeGlobals loads the configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, opts *rootOptions) error {
	configPath, err := config.ResolveConfigPath(opts.configPath)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("resolving config path: %w", err), oerrors.ExitGeneralError)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if err := validator.ValidateFile(configPath.Value); err != nil {
		return oerrors.NewExitError(&oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: configPath.Value,
			Hint:     "fix or remove the configuration file",
			Cause:    err,
		}, oerrors.ExitGeneralError)
	}

	cfg, err := config.NewLoader().LoadWithDefaults(configPath.Value)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if err := validator.Validate(cfg); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	logCfg := output.LogConfig{Verbose: opts.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(opts.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if exists, err := config.ConfigFileExists(configPath.Value); err == nil && !exists {
		output.Debug("no config file, using defaults", "path", configPath.Value)
	}

	packageManager := config.ResolvePackageManager(opts.packageManager, cfg)
	config.LogResolvedValues(configPath, packageManager)

	opts.global = config.GlobalConfig{
		Config:         cfg,
		ConfigPath:     configPath.Value,
		PackageManager: packageManager,
		Verbose:        opts.verbose,
	}
	return nil
}

// withDefaults fills the collaborators not provided by the caller.
func (d Deps) withDefaults(g config.GlobalConfig) Deps {
	var stream io.Writer
	if g.Verbose {
		stream = os.Stderr
	}
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}
	if d.Prompter == nil {
		d.Prompter = output.NewStdPrompter()
	}
	if d.Cloner == nil {
		d.Cloner = vcs.NewCloner(g.Config.Clone.Depth, stream)
	}
	if d.Installer == nil {
		d.Installer = install.NewInstaller(g.PackageManager.Value, g.Config.InstallArgs, stream)
	}
	if d.OpenShell == nil {
		d.OpenShell = openShell
	}
	return d
}

func describeModes(r *templates.Registry) string {
	var sb strings.Builder
	for _, t := range r.List() {
		marker := ""
		if t.Mode == templates.DefaultMode {
			marker = " (default)"
		}
		fmt.Fprintf(&sb, "  %-8s %s%s\n", t.Mode, t.Description, marker)
	}
	return sb.String()
}
