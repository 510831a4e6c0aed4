package manifest

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/creenv/create-creenv/internal/errors"
	"github.com/creenv/create-creenv/internal/output"
)

// FileName is the manifest file edited in the project root.
const FileName = "package.json"

// InitialVersion is written to every scaffolded manifest.
const InitialVersion = "0.0.1"

// ErrWrite marks a failure to persist the edited manifest. The project is
// usable without it, so callers treat it as a warning.
var ErrWrite = errors.New("manifest not written")

// provenanceKeys point at the template's repository and are reset to {}.
var provenanceKeys = []string{"repository", "bugs", "homepage"}

// Answers holds the user's project metadata.
type Answers struct {
	Name        string
	Description string
	Author      string
}

// Result describes a completed edit.
type Result struct {
	// Path is the manifest file location.
	Path string

	// Answers are the values collected from the user, name defaulted.
	Answers Answers

	// Report is the change report between the template's and the written
	// manifest. Empty if nothing changed or the report failed.
	Report string
}

// Editor rewrites the manifest of a freshly cloned project.
type Editor struct {
	fs       afero.Fs
	prompter output.Prompter

	// UseColor enables styled change reports.
	UseColor bool
}

// NewEditor creates an Editor.
func NewEditor(fs afero.Fs, prompter output.Prompter) *Editor {
	return &Editor{fs: fs, prompter: prompter}
}

// Load reads and parses the manifest in dir.
func (e *Editor) Load(dir string) (*Document, []byte, error) {
	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return nil, nil, oerrors.NewManifestError("cannot read manifest", path,
			"the template should contain a package.json at its root", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, oerrors.NewManifestError("cannot parse manifest", path, "", err)
	}
	return doc, data, nil
}

// Ask collects the project metadata. An empty name defaults to the base name
// of dir. A closed input is an error.
func (e *Editor) Ask(dir string) (Answers, error) {
	folder := filepath.Base(filepath.Clean(dir))

	var a Answers
	questions := []struct {
		msg  string
		dest *string
	}{
		{fmt.Sprintf("project name (%s): ", folder), &a.Name},
		{"description: ", &a.Description},
		{"author: ", &a.Author},
	}

	for _, q := range questions {
		answer, err := e.prompter.Prompt(q.msg)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = fmt.Errorf("input closed before all answers were given: %w", err)
			}
			return Answers{}, oerrors.NewManifestError("cannot read project metadata", dir,
				"run create-creenv from an interactive terminal", err)
		}
		*q.dest = strings.TrimSpace(answer)
	}

	if a.Name == "" {
		a.Name = folder
	}
	return a, nil
}

// Apply writes the answers and the fixed fields into doc.
func Apply(doc *Document, a Answers) error {
	for _, f := range [][2]string{
		{"name", a.Name},
		{"description", a.Description},
		{"author", a.Author},
		{"version", InitialVersion},
	} {
		if err := doc.Set(f[0], f[1]); err != nil {
			return err
		}
	}
	for _, key := range provenanceKeys {
		if err := doc.Set(key, struct{}{}); err != nil {
			return err
		}
	}
	return nil
}

// Edit loads the manifest in dir, asks for the project metadata, applies it
// and overwrites the file. A write failure is returned wrapped in ErrWrite
// together with a non-nil Result.
func (e *Editor) Edit(dir string) (*Result, error) {
	doc, before, err := e.Load(dir)
	if err != nil {
		return nil, err
	}

	answers, err := e.Ask(dir)
	if err != nil {
		return nil, err
	}

	if err := Apply(doc, answers); err != nil {
		return nil, oerrors.NewManifestError("cannot update manifest", dir, "", err)
	}

	after, err := doc.Bytes()
	if err != nil {
		return nil, oerrors.NewManifestError("cannot encode manifest", dir, "", err)
	}

	res := &Result{
		Path:    filepath.Join(dir, FileName),
		Answers: answers,
	}

	report, err := ChangeReport(before, after, e.UseColor)
	if err != nil {
		output.Debug("manifest change report unavailable", "err", err)
	}
	res.Report = report

	if err := afero.WriteFile(e.fs, res.Path, after, 0o644); err != nil {
		return res, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return res, nil
}
