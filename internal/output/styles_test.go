package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusStyle_KnownStatuses(t *testing.T) {
	for _, status := range []string{StatusDone, StatusWarning, StatusFailed, StatusSkipped} {
		t.Run(status, func(t *testing.T) {
			rendered := StatusStyle(status).Render(status)
			assert.Contains(t, rendered, status)
		})
	}
}

func TestStatusStyle_Unknown(t *testing.T) {
	assert.Equal(t, "mystery", StatusStyle("mystery").Render("mystery"))
}

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("installation complete")
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "installation complete")
}

func TestFormatWarningMark(t *testing.T) {
	got := FormatWarningMark("installation complete with warnings")
	assert.Contains(t, got, "!")
	assert.Contains(t, got, "with warnings")
}

func TestFormatFailureMark(t *testing.T) {
	got := FormatFailureMark("installation failed")
	assert.Contains(t, got, "✘")
	assert.Contains(t, got, "installation failed")
}

func TestFormatStageLine(t *testing.T) {
	got := FormatStageLine("Installing", StatusDone)
	assert.Contains(t, got, "Installing")
	assert.Contains(t, got, StatusDone)
}

func TestSeparator(t *testing.T) {
	assert.NotEmpty(t, Separator())
}

func TestIndentOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single line", "added 12 packages", "  added 12 packages\n"},
		{"drops blank lines", "a\n\n  \nb\n", "  a\n  b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndentOutput(tt.input, "  "))
		})
	}
}
