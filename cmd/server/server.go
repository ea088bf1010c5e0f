package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// newHTTPServer builds the http.Server for the configured port and timeouts.
func (app *application) newHTTPServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadTimeout:       app.config.Server.ReadTimeout,
		ReadHeaderTimeout: app.config.Server.ReadTimeout,
		WriteTimeout:      app.config.Server.WriteTimeout,
	}
}

// startHTTPServer starts the HTTP server with graceful shutdown support.
// It returns once the server has stopped after SIGINT/SIGTERM, cancellation
// of ctx, or a listen failure. The database pool is closed on the way out.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := app.newHTTPServer(router)

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			serveErr <- err
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	defer app.cleanup()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	default:
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
