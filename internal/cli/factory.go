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
	"github.com/aretw0/branchtale/internal/logging"
	"github.com/aretw0/branchtale/pkg/adapters/file"
	"github.com/aretw0/branchtale/pkg/adapters/redis"
	"github.com/aretw0/branchtale/pkg/adapters/remote"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/observability"
	"github.com/aretw0/branchtale/pkg/ports"
)

// NewLogger configures the application logger.
// Debug logs go to stderr so they stay apart from the reader UI on stdout.
func NewLogger(cfg *config.Config) *slog.Logger {
	if cfg.Debug {
		return logging.New(slog.LevelDebug, logging.Format(cfg.LogFormat))
	}
	return logging.New(slog.LevelWarn, logging.Format(cfg.LogFormat))
}

// BuildSource selects the table source named by the configuration.
// The returned closer releases connections held by the source.
func BuildSource(cfg *config.Config) (ports.TableSource, io.Closer, error) {
	switch cfg.Source {
	case config.SourceDir:
		return file.New(cfg.Dir), nopCloser{}, nil
	case config.SourceHTTP:
		src, err := remote.New(cfg.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		return src, nopCloser{}, nil
	case config.SourceRedis:
		src := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithPrefix(cfg.RedisPrefix))
		return src, src, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// NewEngine loads the tables and starts the first traversal.
// Lifecycle events are logged at debug level; extra hooks are merged in.
func NewEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*branchtale.Engine, io.Closer, error) {
	src, closer, err := BuildSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []branchtale.Option{
		branchtale.WithLogger(logger),
		branchtale.WithStartNode(cfg.Start),
		branchtale.WithLifecycleHooks(observability.LogHooks(logger)),
	}
	for _, h := range hooks {
		opts = append(opts, branchtale.WithLifecycleHooks(h))
	}

	engine, err := branchtale.New(ctx, src, opts...)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return engine, closer, nil
}

// ReportLoadError writes a load failure with remediation guidance.
func ReportLoadError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		fmt.Fprintln(w, branchtale.LoadHint)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func stderrOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}
