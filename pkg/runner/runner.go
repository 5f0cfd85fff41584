package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/ports"
)

const (
	readingPrompt = "> "
	endPrompt     = "[r] restart  [q] quit > "
)

// Runner drives a Reader from a line-oriented terminal.
type Runner struct {
	Input     io.Reader
	Output    io.Writer
	Presenter Presenter
	Logger    *slog.Logger
	Headless  bool
}

// NewRunner creates a new Runner with the provided options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Input == nil {
		r.Input = os.Stdin
	}
	if r.Output == nil {
		r.Output = os.Stdout
	}
	if r.Presenter == nil {
		r.Presenter = PlainPresenter{}
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run presents the reader's view and dispatches commands until the user
// quits, the input ends or ctx is cancelled.
//
// Commands: a number 1..n selects the matching choice, "r"/"restart" starts over,
// "q"/"quit"/"exit" leaves.
func (r *Runner) Run(ctx context.Context, reader ports.Reader) error {
	if reader == nil {
		return errors.New("runner: reader is nil")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	pump := newLinePump(ctx, r.Input)

	redraw := true
	for {
		view := reader.View()
		if redraw {
			if err := r.Presenter.Present(r.Output, view); err != nil {
				return fmt.Errorf("present view: %w", err)
			}
		}
		redraw = true

		r.prompt(view)
		raw, err := pump.next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed")
				return nil
			}
			return err
		}

		input, err := SanitizeInput(raw)
		if err != nil {
			r.Logger.Warn("rejected input", "error", err)
			fmt.Fprintf(r.Output, "Error: %v. Please try again.\n", err)
			redraw = false
			continue
		}
		input = strings.ToLower(strings.TrimSpace(input))

		switch input {
		case "":
			redraw = false
			continue
		case "q", "quit", "exit":
			if !r.Headless {
				fmt.Fprintln(r.Output, "Bye!")
			}
			return nil
		case "r", "restart":
			if err := reader.Restart(ctx); err != nil {
				// Surfaced on the view (e.g. missing start node); keep going.
				r.Logger.Debug("restart surfaced error", "error", err)
			}
			continue
		}

		n, convErr := strconv.Atoi(input)
		choices := available(view)
		if convErr != nil || n < 1 || n > len(choices) {
			redraw = false
			fmt.Fprintln(r.Output, invalidMessage(len(choices)))
			continue
		}

		if err := reader.Select(ctx, choices[n-1].Index); err != nil {
			if errors.Is(err, domain.ErrChoiceUnavailable) {
				redraw = false
				fmt.Fprintln(r.Output, "That choice is not available.")
				continue
			}
			// Missing nodes and malformed choices are surfaced on the next view.
			r.Logger.Debug("selection surfaced error", "error", err)
		}
	}
}

func (r *Runner) prompt(view domain.View) {
	if r.Headless {
		return
	}
	if len(available(view)) == 0 {
		fmt.Fprint(r.Output, endPrompt)
		return
	}
	fmt.Fprint(r.Output, readingPrompt)
}

func available(view domain.View) []domain.ChoiceView {
	if view.Phase != domain.PhaseReading || view.Reader == nil {
		return nil
	}
	return view.Reader.Choices
}

func invalidMessage(n int) string {
	switch n {
	case 0:
		return "Type r to restart or q to quit."
	case 1:
		return "Please enter 1, r to restart or q to quit."
	default:
		return fmt.Sprintf("Please enter a number between 1 and %d.", n)
	}
}
