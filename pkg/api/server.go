// Package api serves an HTTP inspection service for DIS traffic: decoding
// uploaded PDU streams, archiving PDUs and exposing dispatcher metrics.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if s.config.APIKey != "" {
			r.Use(apiKeyMiddleware(s.config.APIKey))
		}

		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))
		r.Get("/types", s.metrics.InstrumentHandler("GET", "/api/v1/types", s.handleTypes))
		r.Post("/decode", s.metrics.InstrumentHandler("POST", "/api/v1/decode", s.handleDecode))

		r.Post("/archive", s.metrics.InstrumentHandler("POST", "/api/v1/archive", s.handleArchivePut))
		r.Get("/archive", s.metrics.InstrumentHandler("GET", "/api/v1/archive", s.handleArchiveList))
		r.Get("/archive/stats", s.metrics.InstrumentHandler("GET", "/api/v1/archive/stats", s.handleArchiveStats))
		r.Get("/archive/{id}", s.metrics.InstrumentHandler("GET", "/api/v1/archive/{id}", s.handleArchiveGet))
		r.Delete("/archive/{id}", s.metrics.InstrumentHandler("DELETE", "/api/v1/archive/{id}", s.handleArchiveDelete))
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Bind, fmt.Sprint(s.config.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("starting disgo API server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "listen on %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info().Msg("shutting down API server")
		return srv.Shutdown(shutdownCtx)
	}
}
