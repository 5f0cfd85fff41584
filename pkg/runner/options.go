package runner

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInput sets the source of user commands (default os.Stdin).
func WithInput(in io.Reader) Option {
	return func(r *Runner) {
		r.Input = in
	}
}

// WithOutput sets the destination of rendered views (default os.Stdout).
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		r.Output = out
	}
}

// WithPresenter configures how views are drawn (default PlainPresenter).
func WithPresenter(p Presenter) Option {
	return func(r *Runner) {
		r.Presenter = p
	}
}

// WithHeadless suppresses prompts and the goodbye line.
// Useful when the runner is driven by a script or a pipe.
func WithHeadless(headless bool) Option {
	return func(r *Runner) {
		r.Headless = headless
	}
}
