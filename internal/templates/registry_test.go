package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name         string
		mode         string
		wantURL      string
		wantFallback bool
	}{
		{"default", "default", "https://github.com/bcrespy/creenv-boilerplate.git", false},
		{"demo", "demo", "https://github.com/bcrespy/creenv-boilerplate-demo.git", false},
		{"light", "light", "https://github.com/bcrespy/creenv-boilerplate-light.git", false},
		{"empty falls back", "", "https://github.com/bcrespy/creenv-boilerplate.git", true},
		{"unknown falls back", "heavy", "https://github.com/bcrespy/creenv-boilerplate.git", true},
		{"case sensitive", "Demo", "https://github.com/bcrespy/creenv-boilerplate.git", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, fallback := r.Resolve(tt.mode)
			assert.Equal(t, tt.wantURL, tmpl.URL)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{"default", "demo", "light"}, NewRegistry().Names())
}

func TestRegistry_CopiesEntries(t *testing.T) {
	src := []Template{
		{Mode: "default", URL: "file:///tmp/a"},
	}
	r := NewRegistry(src...)
	src[0].URL = "mutated"

	tmpl, ok := r.Get("default")
	require.True(t, ok)
	assert.Equal(t, "file:///tmp/a", tmpl.URL)
}

func TestRegistry_List(t *testing.T) {
	list := NewRegistry().List()
	require.Len(t, list, 3)
	for _, tmpl := range list {
		assert.NotEmpty(t, tmpl.URL)
		assert.NotEmpty(t, tmpl.Description)
	}
}
