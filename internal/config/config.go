// Package config provides configuration loading and management.
package config

// CloneConfig contains template fetch settings.
type CloneConfig struct {
	// Depth limits the fetched history. 0 fetches the full history.
	// Env: CREENV_CLONE_DEPTH
	Depth int `json:"depth,omitempty" mapstructure:"depth"`
}

// PostProcessConfig contains comment-stripping settings.
type PostProcessConfig struct {
	// SourceDir is the folder, relative to the project root, whose files are
	// stripped of comments when --nocomment is set.
	// Env: CREENV_SOURCE_DIR, Default: "src"
	SourceDir string `json:"sourceDir,omitempty" mapstructure:"sourceDir"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the create-creenv configuration file (~/.creenv/config.yaml).
type Config struct {
	// PackageManager is the command used to install dependencies.
	// Env: CREENV_PACKAGE_MANAGER, Default: "npm"
	PackageManager string `json:"packageManager,omitempty" mapstructure:"packageManager"`

	// InstallArgs are the arguments passed to the package manager.
	// Default: ["install"]
	InstallArgs []string `json:"installArgs,omitempty" mapstructure:"installArgs"`

	// Clone contains template fetch settings.
	Clone CloneConfig `json:"clone,omitempty" mapstructure:"clone"`

	// PostProcess contains comment-stripping settings.
	PostProcess PostProcessConfig `json:"postprocess,omitempty" mapstructure:"postprocess"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" mapstructure:"log"`
}

// Default values.
const (
	DefaultPackageManager = "npm"
	DefaultSourceDir      = "src"
)

// DefaultInstallArgs returns the default package manager arguments.
func DefaultInstallArgs() []string {
	return []string{"install"}
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		InstallArgs:    DefaultInstallArgs(),
		PostProcess: PostProcessConfig{
			SourceDir: DefaultSourceDir,
		},
	}
}

// WithDefaults returns a copy of the config with empty fields set to defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.PackageManager == "" {
		out.PackageManager = DefaultPackageManager
	}
	if len(out.InstallArgs) == 0 {
		out.InstallArgs = DefaultInstallArgs()
	}
	if out.PostProcess.SourceDir == "" {
		out.PostProcess.SourceDir = DefaultSourceDir
	}
	return &out
}

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly to the command.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// PackageManager is the resolved install command.
	PackageManager ResolvedValue

	// Verbose enables debug logging.
	Verbose bool
}
