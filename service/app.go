package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"galleria/app/middleware"
	"galleria/app/routes"
	"galleria/config"
)

const serviceName = "galleria"

// RunAppServer starts the gallery API and blocks until SIGINT or SIGTERM.
func RunAppServer(cfg *config.Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := newServer(cfg)
	if err != nil {
		log.Printf("Failed to start server: %v", err)
		return 1
	}
	defer cleanup()

	log.Printf("Starting gallery service on %s (storage: %s, data: %s)", srv.Addr, cfg.StorageBackend, dataPath(cfg))
	if err := runServer(ctx, srv, cfg.ShutdownTimeout); err != nil {
		log.Printf("Server error: %v", err)
		return 1
	}
	log.Println("Server stopped")
	return 0
}

// newServer wires storage, observability and routes into an http.Server.
// The returned cleanup releases everything newServer opened.
func newServer(cfg *config.Config) (*http.Server, func(), error) {
	repo, err := openRepository(cfg)
	if err != nil {
		return nil, nil, err
	}
	closers := []func() error{repo.Close}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Printf("Error during shutdown: %v", err)
			}
		}
	}

	var opts routes.Options
	if cfg.MetricsEnabled {
		opts.Metrics = middleware.NewMetrics()
	}
	if cfg.ZipkinAddress != "" {
		tracing, err := middleware.NewTracing(serviceName, cfg.ZipkinAddress, "localhost"+cfg.Addr())
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, tracing.Close)
		opts.Tracing = tracing
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.SetupRoutes(repo, opts),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, cleanup, nil
}

// runServer serves until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests up to timeout to finish.
func runServer(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
