package output

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Prompter asks the user line-based questions.
// Both methods block until a line is read; there is no timeout.
type Prompter interface {
	// Prompt prints msg and returns the answer without its line ending.
	Prompt(msg string) (string, error)

	// Confirm prints msg and reports whether the answer was "y" or "yes".
	Confirm(msg string) (bool, error)
}

// LinePrompter reads answers line by line from a reader.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// NewStdPrompter creates a prompter on the process stdin and stdout.
func NewStdPrompter() *LinePrompter {
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// Prompt implements Prompter. Returns io.EOF when the input is closed before
// an answer is read.
func (p *LinePrompter) Prompt(msg string) (string, error) {
	_, _ = io.WriteString(p.out, msg)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

// Confirm implements Prompter. A closed input counts as a refusal.
func (p *LinePrompter) Confirm(msg string) (bool, error) {
	answer, err := p.Prompt(msg)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
