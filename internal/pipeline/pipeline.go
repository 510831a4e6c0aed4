// Package pipeline runs the project installation as an ordered list of stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/creenv/create-creenv/internal/comments"
	"github.com/creenv/create-creenv/internal/config"
	"github.com/creenv/create-creenv/internal/destination"
	oerrors "github.com/creenv/create-creenv/internal/errors"
	"github.com/creenv/create-creenv/internal/manifest"
	"github.com/creenv/create-creenv/internal/output"
	"github.com/creenv/create-creenv/internal/templates"
	"github.com/creenv/create-creenv/internal/vcs"
)

// Cloner fetches a template repository into a folder.
type Cloner interface {
	Clone(ctx context.Context, url, ref, dest string) error
}

// Installer installs the dependencies of the project in dir and returns the
// command output.
type Installer interface {
	Install(ctx context.Context, dir string) (string, error)
}

// Context is the state shared by the stages of one run.
type Context struct {
	// Destination is the project folder.
	Destination string

	// Mode is the requested template key.
	Mode string

	// Ref is the template branch or tag. Empty means the default branch.
	Ref string

	// StripComments enables the comment removal stage.
	StripComments bool

	// Template is the resolved template, set by the fetch stage.
	Template templates.Template

	// InstallOutput is the captured package manager output.
	InstallOutput string

	// Manifest is the outcome of the manifest edit.
	Manifest *manifest.Result

	// StrippedFiles is the number of files rewritten by comment removal.
	StrippedFiles int
}

// Result is the outcome of a run.
type Result struct {
	// State is Completed or Aborted.
	State State

	// FailedAt is the stage that aborted the run. Idle when completed.
	FailedAt State

	// Err is the fatal failure, nil when completed.
	Err *StageError

	// Warnings are the non-fatal failures in the order they happened.
	Warnings []*StageError
}

// Degraded reports whether the run completed with warnings.
func (r *Result) Degraded() bool {
	return r.State == Completed && len(r.Warnings) > 0
}

// Stage is one step of the pipeline.
type Stage struct {
	// State is entered before Run is called.
	State State

	// Kind classifies errors returned by Run that are not *StageError.
	Kind Kind

	// Run performs the stage.
	Run func(ctx context.Context, pc *Context) error

	// Enabled reports whether the stage runs. Nil means always.
	Enabled func(pc *Context) bool
}

// Options configures a Pipeline.
type Options struct {
	// Fs is the filesystem the destination, metadata, manifest and comment
	// stages work on. Defaults to the OS filesystem.
	Fs afero.Fs

	// Prompter asks the user questions.
	Prompter output.Prompter

	// Registry resolves template modes. Defaults to the built-in templates.
	Registry *templates.Registry

	// Cloner fetches templates.
	Cloner Cloner

	// Installer installs dependencies.
	Installer Installer

	// SourceDir is the folder, relative to the destination, stripped of
	// comments. Defaults to "src".
	SourceDir string

	// UseColor styles the manifest change report.
	UseColor bool

	// NoSpinner disables the progress spinners, used when the clone and
	// install output is streamed to the terminal.
	NoSpinner bool

	// OnTransition is called on every state change.
	OnTransition func(from, to State)

	// OnStageEnd is called after each stage with its failure, if any.
	// skipped is true for a disabled stage that did not run.
	OnStageEnd func(s State, skipped bool, err *StageError)
}

// Pipeline runs the installation stages in order.
type Pipeline struct {
	opts   Options
	stages []Stage
	state  State
}

// New creates a Pipeline with the standard stages.
func New(opts Options) *Pipeline {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Registry == nil {
		opts.Registry = templates.NewRegistry()
	}
	if opts.SourceDir == "" {
		opts.SourceDir = config.DefaultSourceDir
	}

	p := &Pipeline{opts: opts, state: Idle}
	p.stages = []Stage{
		{State: ResolvingDestination, Kind: DestinationFailure, Run: p.resolveDestination},
		{State: Fetching, Kind: FetchFailure, Run: p.fetch},
		{State: Installing, Kind: InstallFailure, Run: p.install},
		{State: Cleaning, Kind: CleanupWarning, Run: p.clean},
		{State: EditingManifest, Kind: ManifestFailure, Run: p.editManifest},
		{
			State:   PostProcessing,
			Kind:    PostProcessFailure,
			Run:     p.stripComments,
			Enabled: func(pc *Context) bool { return pc.StripComments },
		},
	}
	return p
}

// Stages returns the configured stages.
func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Run executes the stages in order and stops at the first fatal failure.
func (p *Pipeline) Run(ctx context.Context, pc *Context) *Result {
	res := &Result{}

	for _, st := range p.stages {
		if st.Enabled != nil && !st.Enabled(pc) {
			output.Debug("stage skipped", "stage", st.State)
			p.stageEnd(st.State, true, nil)
			continue
		}

		p.enter(st.State)

		err := st.Run(ctx, pc)
		if err == nil {
			p.stageEnd(st.State, false, nil)
			continue
		}

		var se *StageError
		if !errors.As(err, &se) {
			se = &StageError{Kind: st.Kind, Err: err}
		}
		se.Stage = st.State
		p.stageEnd(st.State, false, se)

		if se.Fatal() {
			res.State = Aborted
			res.FailedAt = st.State
			res.Err = se
			p.enter(Aborted)
			return res
		}

		output.Warn(fmt.Sprintf("%s did not complete", st.State), "err", se.Err)
		res.Warnings = append(res.Warnings, se)
	}

	res.State = Completed
	p.enter(Completed)
	return res
}

func (p *Pipeline) enter(s State) {
	from := p.state
	p.state = s
	output.Debug("stage transition", "from", from, "to", s)
	if p.opts.OnTransition != nil {
		p.opts.OnTransition(from, s)
	}
}

func (p *Pipeline) stageEnd(s State, skipped bool, err *StageError) {
	if p.opts.OnStageEnd != nil {
		p.opts.OnStageEnd(s, skipped, err)
	}
}

func (p *Pipeline) resolveDestination(_ context.Context, pc *Context) error {
	err := destination.NewResolver(p.opts.Fs, p.opts.Prompter).Resolve(pc.Destination)
	if errors.Is(err, oerrors.ErrUserAbort) {
		return &StageError{Kind: UserAbort, Err: err}
	}
	return err
}

func (p *Pipeline) fetch(ctx context.Context, pc *Context) error {
	tmpl, fallback := p.opts.Registry.Resolve(pc.Mode)
	if fallback && pc.Mode != "" {
		output.Warn("unknown mode, using the default template", "mode", pc.Mode)
	}
	pc.Template = tmpl

	output.StageLogger("fetch").Info("cloning template", "mode", tmpl.Mode, "url", tmpl.URL)

	if !p.opts.NoSpinner {
		spin := output.StartSpinner(fmt.Sprintf("Cloning %s", tmpl.URL))
		defer func() { _ = spin.Stop() }()
	}

	return p.opts.Cloner.Clone(ctx, tmpl.URL, pc.Ref, pc.Destination)
}

func (p *Pipeline) install(ctx context.Context, pc *Context) error {
	output.StageLogger("install").Info("installing dependencies", "dir", pc.Destination)

	var out string
	run := func(ctx context.Context) error {
		var err error
		out, err = p.opts.Installer.Install(ctx, pc.Destination)
		return err
	}

	var err error
	if p.opts.NoSpinner {
		err = run(ctx)
	} else {
		err = output.RunWithSpinner(ctx, run, output.WithTitle("Installing dependencies"))
	}
	pc.InstallOutput = out
	if err != nil {
		return &StageError{Kind: InstallFailure, Err: err, Output: out}
	}
	return nil
}

func (p *Pipeline) clean(_ context.Context, pc *Context) error {
	return vcs.StripMetadata(p.opts.Fs, pc.Destination)
}

func (p *Pipeline) editManifest(_ context.Context, pc *Context) error {
	editor := manifest.NewEditor(p.opts.Fs, p.opts.Prompter)
	editor.UseColor = p.opts.UseColor

	res, err := editor.Edit(pc.Destination)
	pc.Manifest = res
	if res != nil && res.Report != "" {
		output.Debug("manifest changes\n" + res.Report)
	}
	if errors.Is(err, manifest.ErrWrite) {
		return &StageError{Kind: ManifestWriteFailure, Err: err}
	}
	return err
}

func (p *Pipeline) stripComments(_ context.Context, pc *Context) error {
	root := filepath.Join(pc.Destination, p.opts.SourceDir)
	n, err := comments.StripTree(p.opts.Fs, root)
	pc.StrippedFiles = n
	if err != nil {
		return err
	}
	output.StageLogger("comments").Info("comments removed", "files", n)
	return nil
}
