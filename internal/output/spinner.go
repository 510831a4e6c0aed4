package output

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/huh/spinner"
)

// Spinner is a handle to a running progress indicator.
// The zero value is not usable; create one with StartSpinner.
type Spinner struct {
	done     chan struct{}
	finished chan struct{}
	once     sync.Once
	err      error
}

// StartSpinner starts a spinner with the given title and returns its handle.
// When stdout is not a terminal no animation is drawn, but the handle behaves
// the same way.
func StartSpinner(title string) *Spinner {
	s := &Spinner{
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	if !IsTTY() {
		close(s.finished)
		return s
	}

	go func() {
		defer close(s.finished)
		s.err = spinner.New().
			Title(title).
			Action(func() { <-s.done }).
			Run()
	}()

	return s
}

// Stop stops the spinner and waits for it to clear the line.
// Stop is safe to call more than once.
func (s *Spinner) Stop() error {
	s.once.Do(func() { close(s.done) })
	<-s.finished
	if s.err != nil {
		return fmt.Errorf("spinner error: %w", s.err)
	}
	return nil
}

// SpinnerOption configures RunWithSpinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action while a spinner is shown.
// The spinner is stopped on every return path. Returns the action's error.
func RunWithSpinner(ctx context.Context, action func(context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	s := StartSpinner(cfg.title)
	err := action(ctx)
	if stopErr := s.Stop(); stopErr != nil {
		Debug("spinner stopped with error", "error", stopErr)
	}
	return err
}
