// Package vcs fetches template repositories and removes their version
// control metadata.
package vcs

import (
	"context"
	"fmt"
	"io"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	oerrors "github.com/creenv/create-creenv/internal/errors"
	"github.com/creenv/create-creenv/internal/output"
)

// Cloner clones template repositories with go-git.
type Cloner struct {
	// Depth limits the fetched history. 0 fetches everything.
	Depth int

	// Progress receives the remote's sideband output when set.
	Progress io.Writer
}

// NewCloner creates a Cloner.
func NewCloner(depth int, progress io.Writer) *Cloner {
	return &Cloner{Depth: depth, Progress: progress}
}

// Clone clones url into dest. When ref is set, only that branch or tag is
// checked out; a bare name is tried as a branch first, then as a tag.
func (c *Cloner) Clone(ctx context.Context, url, ref, dest string) error {
	candidates := referenceCandidates(ref)

	var lastErr error
	for _, name := range candidates {
		opts := &git.CloneOptions{
			URL:           url,
			Depth:         c.Depth,
			Progress:      c.Progress,
			ReferenceName: name,
			SingleBranch:  name != "",
		}

		output.Debug("cloning template", "url", url, "ref", name.String(), "dest", dest, "depth", c.Depth)

		_, err := git.PlainCloneContext(ctx, dest, false, opts)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	details := map[string]string{"Template": url}
	if ref != "" {
		details["Version"] = ref
	}
	return oerrors.NewConnectivityError(
		fmt.Sprintf("cloning template: %v", lastErr),
		details,
		"check your internet connection and that the template version exists",
		lastErr,
	)
}

// referenceCandidates expands a user supplied ref into the references to try.
// The empty ref means the remote HEAD.
func referenceCandidates(ref string) []plumbing.ReferenceName {
	switch {
	case ref == "":
		return []plumbing.ReferenceName{""}
	case strings.HasPrefix(ref, "refs/"):
		return []plumbing.ReferenceName{plumbing.ReferenceName(ref)}
	default:
		return []plumbing.ReferenceName{
			plumbing.NewBranchReferenceName(ref),
			plumbing.NewTagReferenceName(ref),
		}
	}
}
