package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const readHeaderTimeout = 10 * time.Second

// Run registers all routes and serves until ctx is cancelled, then shuts the
// HTTP server down and closes the database pool.
func (srv HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("map handlers: %w", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			srv.closeDB(ctx)
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		srv.l.Info(ctx, "Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	srv.closeDB(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (srv HTTPServer) closeDB(ctx context.Context) {
	if err := srv.postgresDB.Close(); err != nil {
		srv.l.Errorf(ctx, "httpserver.closeDB: %v", err)
		return
	}
	srv.l.Info(ctx, "Database connection closed")
}
