package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for all ANSI 256 colors used in the CLI;
// never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: folders, template names, URLs.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for completed stages.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and degraded success.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failed stages (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is the background of the separator bar.
	ColorBlue = lipgloss.Color("27")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (folders, template names, URLs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (cloning, installing, removing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, captured tool output).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleSeparator renders the banner bar between pipeline sections.
	StyleSeparator = lipgloss.NewStyle().Background(ColorBlue)
)

// Stage status constants.
const (
	StatusDone    = "done"
	StatusWarning = "warning"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// separatorWidth matches the width of the banner printed around the run.
const separatorWidth = 29

// StatusStyle returns the lipgloss style for a stage status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusDone:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarningMark renders a yellow warning marker with a message.
func FormatWarningMark(msg string) string {
	mark := lipgloss.NewStyle().Foreground(ColorYellow).Render("!")
	return mark + " " + msg
}

// FormatFailureMark renders a red cross with a message.
func FormatFailureMark(msg string) string {
	mark := lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render("✘")
	return mark + " " + msg
}

// Separator renders the banner bar.
func Separator() string {
	return StyleSeparator.Render(strings.Repeat(" ", separatorWidth))
}

// FormatStageLine renders "<stage>  <status>" with the status right-aligned
// to a fixed column.
func FormatStageLine(stage, status string) string {
	const column = 24
	padding := column - len(stage)
	if padding < 2 {
		padding = 2
	}
	return StyleAction.Render(stage) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// IndentOutput indents captured tool output for display under a log line.
// Blank lines are dropped.
func IndentOutput(text, indent string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
