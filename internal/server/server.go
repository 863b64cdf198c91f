// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the recommendation engine over HTTP.
//
// Routes:
//
//	GET  /healthz
//	POST /v1/recommendations   {"analysis": "...", "displayName": "..."}
//	POST /v1/classifications   {"analysis": "..."}
//	GET  /v1/presets
//	GET  /v1/presets/{id}
//	GET  /v1/prompt?brand=...
//
// Errors use the envelope {"error", "message", "status", "request_id"}.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pdiddy/brand-engine/internal/logging"
	"github.com/pdiddy/brand-engine/internal/recommend"
	"github.com/pdiddy/brand-engine/pkg/types"
)

const (
	defaultAddr         = ":8080"
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 1 << 20
	shutdownTimeout     = 5 * time.Second
)

// Server serves one Engine.
type Server struct {
	engine *recommend.Engine
	cfg    types.ServerConfig
	logger *zap.Logger
}

// New returns a Server. Zero fields in cfg take their defaults; a nil
// logger discards output.
func New(engine *recommend.Engine, cfg types.ServerConfig, logger *zap.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, cfg: cfg, logger: logger}
}

// Handler returns the routed handler with the shared middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logging.InjectLogger(s.logger),
		logging.RequestLogger,
		recoverer,
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, http.StatusNotFound, codeNotFound, fmt.Sprintf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, http.StatusMethodNotAllowed, codeMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/healthz", s.healthz)

	r.Route("/v1", func(api chi.Router) {
		api.Use(requireToken(s.cfg.APIToken))
		api.Post("/recommendations", s.recommendations)
		api.Post("/classifications", s.classifications)
		api.Get("/presets", s.listPresets)
		api.Get("/presets/{id}", s.getPreset)
		api.Get("/prompt", s.prompt)
	})
	return r
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and serves until ctx
// is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}
