// Package templates provides the registry of project templates that
// create-creenv can scaffold from.
package templates

import (
	"sort"
)

// DefaultMode is the registry key used when no mode is given or the mode is
// unknown.
const DefaultMode = "default"

// Template is a named remote template repository.
type Template struct {
	// Mode is the registry key (default, demo, light).
	Mode string

	// URL is the git remote the template is cloned from.
	URL string

	// Description explains what the template contains.
	Description string
}

// builtin is the set of templates shipped with the CLI.
var builtin = []Template{
	{
		Mode:        "default",
		URL:         "https://github.com/bcrespy/creenv-boilerplate.git",
		Description: "Full creenv boilerplate",
	},
	{
		Mode:        "demo",
		URL:         "https://github.com/bcrespy/creenv-boilerplate-demo.git",
		Description: "Boilerplate with a working demo sketch",
	},
	{
		Mode:        "light",
		URL:         "https://github.com/bcrespy/creenv-boilerplate-light.git",
		Description: "Lightweight boilerplate",
	},
}

// Registry is an immutable mapping from mode key to template.
type Registry struct {
	entries map[string]Template
}

// NewRegistry builds a registry from the given templates. The entries are
// copied. With no arguments the built-in templates are used. A registry must
// contain a "default" entry for Resolve to fall back to.
func NewRegistry(templates ...Template) *Registry {
	if len(templates) == 0 {
		templates = builtin
	}
	entries := make(map[string]Template, len(templates))
	for _, t := range templates {
		entries[t.Mode] = t
	}
	return &Registry{entries: entries}
}

// Get returns the template registered under mode.
func (r *Registry) Get(mode string) (Template, bool) {
	t, ok := r.entries[mode]
	return t, ok
}

// Resolve returns the template for mode. Unknown or empty modes resolve to the
// default entry; fallback reports whether that happened.
func (r *Registry) Resolve(mode string) (t Template, fallback bool) {
	if t, ok := r.entries[mode]; ok {
		return t, false
	}
	return r.entries[DefaultMode], true
}

// Names returns all registered mode keys in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all registered templates sorted by mode.
func (r *Registry) List() []Template {
	names := r.Names()
	out := make([]Template, 0, len(names))
	for _, name := range names {
		out = append(out, r.entries[name])
	}
	return out
}
