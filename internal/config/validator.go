package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaData)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: def,
	}, nil
}

// Validate checks semantic constraints on an already loaded configuration.
// Environment overrides are applied by then, so this catches bad env values
// the schema never sees.
func (v *Validator) Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.PackageManager != "" && strings.ContainsAny(cfg.PackageManager, " \t") {
		errs = append(errs, ValidationError{
			Field:   "packageManager",
			Message: "must be a single command name without whitespace",
		})
	}

	if cfg.Clone.Depth < 0 {
		errs = append(errs, ValidationError{
			Field:   "clone.depth",
			Message: "must be zero or positive",
		})
	}

	if dir := cfg.PostProcess.SourceDir; dir != "" {
		if filepath.IsAbs(dir) || strings.HasPrefix(filepath.Clean(dir), "..") {
			errs = append(errs, ValidationError{
				Field:   "postprocess.sourceDir",
				Message: "must be a path inside the project",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateFile validates the raw contents of a configuration file against the
// schema. A missing or empty file is valid.
func (v *Validator) ValidateFile(path string) error {
	expandedPath, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	return v.ValidateBytes(data)
}

// ValidateBytes validates YAML configuration data against the schema.
func (v *Validator) ValidateBytes(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &ValidationError{Field: "config", Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	if raw == nil {
		return nil
	}

	value := v.ctx.Encode(raw)
	if value.Err() != nil {
		return fmt.Errorf("encoding config: %w", value.Err())
	}

	if err := v.schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Field: "config", Message: err.Error()}
	}

	return nil
}
