package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_Prompt(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("My Project\r\n\nAlice\n"), &out)

	name, err := p.Prompt("name? ")
	require.NoError(t, err)
	assert.Equal(t, "My Project", name)

	desc, err := p.Prompt("description? ")
	require.NoError(t, err)
	assert.Equal(t, "", desc, "empty line is a valid answer")

	author, err := p.Prompt("author? ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", author)

	assert.Equal(t, "name? description? author? ", out.String())
}

func TestLinePrompter_PromptEOF(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), io.Discard)

	_, err := p.Prompt("name? ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLinePrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{" YES \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p := NewLinePrompter(strings.NewReader(tt.input), io.Discard)
			got, err := p.Confirm("recreate? [y/N]: ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
