package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/sebasr/qts-service/internal/config"
)

// ListenAndServe listens on the configured port and serves handler until ctx is done
func ListenAndServe(ctx context.Context, cfg *config.ServerConfig, handler http.Handler) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}

	return Serve(ctx, ln, cfg, handler)
}

// Serve serves handler on ln until ctx is done, then stops accepting
// connections and waits up to cfg.ShutdownTimeout for in-flight requests.
func Serve(ctx context.Context, ln net.Listener, cfg *config.ServerConfig, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Printf("Shutting down, waiting up to %s for open requests", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
