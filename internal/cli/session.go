package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/branchtale"
	"github.com/aretw0/branchtale/internal/config"
	"github.com/aretw0/branchtale/internal/presentation/tui"
	"github.com/aretw0/branchtale/pkg/runner"
	"github.com/muesli/termenv"
)

// SessionOptions controls the terminal session.
type SessionOptions struct {
	Config *config.Config
	Input  io.Reader
	Output io.Writer
	// ErrOutput receives load failures (default os.Stderr).
	ErrOutput io.Writer
	// Interactive enables the banner, prompts and styled output.
	Interactive bool
}

// RunSession loads the tables and drives the reader from the terminal
// until the user quits, input ends or a signal arrives.
func RunSession(ctx context.Context, opts SessionOptions) error {
	cfg := opts.Config
	logger := NewLogger(cfg)

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	engine, closer, err := NewEngine(sigCtx, cfg, logger)
	if err != nil {
		ReportLoadError(stderrOr(opts.ErrOutput), err)
		return err
	}
	defer closer.Close()

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	styled := opts.Interactive && !cfg.Plain
	if styled {
		tui.PrintBanner(out, termenv.ColorProfile(), branchtale.Version)
	}

	r := runner.NewRunner(
		runner.WithInput(opts.Input),
		runner.WithOutput(out),
		runner.WithLogger(logger),
		runner.WithHeadless(!opts.Interactive),
		runner.WithPresenter(newPresenter(styled, logger)),
	)

	runErr := r.Run(sigCtx, engine)
	if runErr != nil && errors.Is(runErr, context.Canceled) && sigCtx.Signal() != nil {
		// Interrupted by the user; exit cleanly.
		if opts.Interactive {
			fmt.Fprintln(out, "\n[CTRL+C]")
		}
		logger.Debug("session interrupted", "signal", sigCtx.Signal().String())
		return nil
	}
	return runErr
}

func newPresenter(styled bool, logger *slog.Logger) runner.Presenter {
	if !styled {
		return runner.PlainPresenter{}
	}
	render, err := tui.NewRenderer(tui.DefaultWordWrap)
	if err != nil {
		logger.Warn("markdown renderer unavailable, using plain text", "error", err)
		render = nil
	}
	return tui.NewPresenter(render)
}
