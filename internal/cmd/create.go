package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/creenv/create-creenv/internal/destination"
	oerrors "github.com/creenv/create-creenv/internal/errors"
	"github.com/creenv/create-creenv/internal/output"
	"github.com/creenv/create-creenv/internal/pipeline"
	"github.com/creenv/create-creenv/internal/templates"
)

func runCreate(cmd *cobra.Command, args []string, opts *rootOptions, deps Deps, registry *templates.Registry) error {
	dest := destination.DefaultPath
	if len(args) > 0 && args[0] != "" {
		dest = args[0]
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("resolving destination: %w", err), oerrors.ExitDestinationError)
	}

	deps = deps.withDefaults(opts.global)

	output.Println(output.Separator())
	output.Println(output.StyleSummary.Render("starting installation"))
	output.Println(output.Separator())

	p := pipeline.New(pipeline.Options{
		Fs:         deps.Fs,
		Prompter:   deps.Prompter,
		Registry:   registry,
		Cloner:     deps.Cloner,
		Installer:  deps.Installer,
		SourceDir:  opts.global.Config.PostProcess.SourceDir,
		UseColor:   output.IsTTY(),
		NoSpinner:  opts.verbose,
		OnStageEnd: printStageEnd,
	})

	pc := &pipeline.Context{
		Destination:   absDest,
		Mode:          opts.mode,
		Ref:           opts.templateVersion,
		StripComments: opts.noComment,
	}

	res := p.Run(cmd.Context(), pc)

	if res.State == pipeline.Aborted {
		return reportFailure(res, absDest, opts.verbose)
	}

	if len(res.Warnings) > 0 {
		warnings := make([]output.StageWarning, 0, len(res.Warnings))
		for _, w := range res.Warnings {
			warnings = append(warnings, output.StageWarning{
				Stage:   w.Stage.String(),
				Problem: w.Err.Error(),
				Hint:    w.Kind.Hint(),
			})
		}
		output.Println(output.RenderWarningTable(warnings))
	}

	if res.Degraded() {
		output.Println(output.FormatWarningMark("installation complete with warnings"))
	} else {
		output.Println(output.FormatCheckmark("installation complete"))
	}
	output.Println("")
	output.Print(output.RenderFileTree(filepath.Base(absDest), projectSummary(pc)))
	output.Println("")
	output.Println(fmt.Sprintf("Get started with %s", output.StyleNoun.Render("cd "+dest)))

	if opts.open {
		if err := deps.OpenShell(cmd, absDest); err != nil {
			output.Warn("could not open a shell in the project", "err", err)
		}
	}

	return nil
}

// reportFailure prints the failed stage and converts the result into an
// ExitError carrying the matching exit code.
func reportFailure(res *pipeline.Result, dest string, verbose bool) error {
	se := res.Err
	output.Println(output.FormatFailureMark(fmt.Sprintf("installation failed at stage %s", res.FailedAt)))

	if se.Kind == pipeline.UserAbort {
		output.Println(output.StyleDim.Render("the destination was left untouched"))
		return &oerrors.ExitError{Err: se, Code: oerrors.ExitUserAbort, Printed: true}
	}

	if se.Output != "" && !verbose {
		output.Print(output.IndentOutput(se.Output, "    "))
	}

	var detail *oerrors.DetailError
	if !errors.As(se, &detail) {
		detail = &oerrors.DetailError{
			Type:     se.Kind.String(),
			Message:  se.Err.Error(),
			Location: dest,
			Cause:    se,
		}
	}
	if detail.Hint == "" {
		detail.Hint = se.Kind.Hint()
	}

	return oerrors.NewExitError(detail, exitCodeForKind(se.Kind))
}

func printStageEnd(s pipeline.State, skipped bool, err *pipeline.StageError) {
	status := output.StatusDone
	switch {
	case skipped:
		status = output.StatusSkipped
	case err != nil && err.Fatal():
		status = output.StatusFailed
	case err != nil:
		status = output.StatusWarning
	}
	output.Println(output.FormatStageLine(s.String(), status))
}

func exitCodeForKind(k pipeline.Kind) int {
	switch k {
	case pipeline.UserAbort:
		return oerrors.ExitUserAbort
	case pipeline.DestinationFailure:
		return oerrors.ExitDestinationError
	case pipeline.FetchFailure:
		return oerrors.ExitConnectivityError
	case pipeline.InstallFailure:
		return oerrors.ExitInstallError
	case pipeline.ManifestFailure:
		return oerrors.ExitManifestError
	default:
		return oerrors.ExitGeneralError
	}
}

// projectSummary lists the entries shown in the final tree.
func projectSummary(pc *pipeline.Context) map[string]string {
	files := map[string]string{
		"package.json":  "Project manifest",
		"node_modules/": "Installed dependencies",
		"src/":          "Sources",
	}
	if pc.Manifest != nil {
		files["package.json"] = fmt.Sprintf("Project manifest (%s)", pc.Manifest.Answers.Name)
	}
	if pc.StripComments {
		files["src/"] = fmt.Sprintf("Sources, comments removed from %d files", pc.StrippedFiles)
	}
	return files
}
