package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/rpn/internal/config"
	httpAdapter "github.com/aretw0/rpn/pkg/adapters/http"
	"github.com/aretw0/rpn/pkg/adapters/mcp"
	"github.com/aretw0/rpn/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// shutdownTimeout bounds how long outstanding requests may take after a signal.
const shutdownTimeout = 5 * time.Second

// NewServeHandler builds the HTTP API around a fresh calculator whose
// operations are counted in a dedicated registry served on /metrics.
func NewServeHandler(cfg config.Config) (http.Handler, error) {
	logger := createLogger(cfg, false)

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	calc, err := createCalculator(cfg, logger, metrics.Hooks())
	if err != nil {
		return nil, err
	}

	return httpAdapter.NewHandler(calc,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetricsHandler(observability.Handler(reg)),
	), nil
}

// Serve runs the HTTP API on cfg.Addr until ctx is cancelled.
func Serve(ctx context.Context, cfg config.Config) error {
	logger := createLogger(cfg, false)

	handler, err := NewServeHandler(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting rpn server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("rpn server stopped gracefully")
		return nil
	}
}

// NewMCPServer builds the MCP adapter. Each rebuild triggered by the
// configure tool goes through the same calculator conventions as the CLI.
func NewMCPServer(cfg config.Config) (*mcp.Server, error) {
	logger := createLogger(cfg, false)
	factory := func(c config.Config) (mcp.Calculator, error) {
		calc, err := createCalculator(c, logger)
		if err != nil {
			return nil, err
		}
		return calc, nil
	}
	return mcp.NewServer(cfg, factory, mcp.WithLogger(logger))
}

// ServeMCP runs the MCP server over stdio or SSE.
func ServeMCP(ctx context.Context, cfg config.Config, transport string, port int) error {
	srv, err := NewMCPServer(cfg)
	if err != nil {
		return err
	}
	switch transport {
	case "stdio":
		return srv.ServeStdio()
	case "sse":
		return srv.ServeSSE(ctx, port)
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
	}
}
