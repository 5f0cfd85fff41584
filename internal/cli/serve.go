package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/branchtale/internal/config"
	httpAdapter "github.com/aretw0/branchtale/pkg/adapters/http"
	"github.com/aretw0/branchtale/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// NewServeHandler loads the tables and returns the HTTP API with /metrics mounted.
// The returned cleanup releases the table source.
func NewServeHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewMetrics(reg)

	engine, closer, err := NewEngine(ctx, cfg, logger, metrics.Hooks())
	if err != nil {
		return nil, nil, err
	}

	handler := httpAdapter.NewHandler(engine,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)
	return handler, func() { _ = closer.Close() }, nil
}

// Serve runs the HTTP API until SIGINT/SIGTERM, then shuts down gracefully.
func Serve(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg)

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	handler, cleanup, err := NewServeHandler(sigCtx, cfg, logger)
	if err != nil {
		ReportLoadError(stderrOr(nil), err)
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("branchtale server listening", "address", srv.Addr, "source", cfg.Source)
		fmt.Printf("Starting branchtale server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		fmt.Printf("\nStart shutdown... Signal: %v\n", sigCtx.Signal())

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		fmt.Println("branchtale server stopped gracefully")
		return nil
	}
}
