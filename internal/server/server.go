// Package server provides the thin HTTP surface over the matching engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/engine"
	"github.com/jonathan/match-engine/internal/server/middleware"
	"github.com/jonathan/match-engine/internal/server/ratelimit"
	"github.com/jonathan/match-engine/internal/types"
)

// Version is the reported build version; overridden at link time.
var Version = "dev"

// Config holds server configuration
type Config struct {
	Port int
	// AuthSecret enables bearer-token auth on scoring endpoints when set.
	AuthSecret     string
	DefaultOptions types.MatchOptions
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	engine      *engine.Engine
	logger      *zap.Logger
	tokens      *TokenService
	rateLimiter *ratelimit.Limiter
	defaults    types.MatchOptions
}

// New creates a server around an already-constructed engine.
func New(cfg Config, matcher *engine.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		engine:      matcher,
		logger:      logger,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		defaults:    cfg.DefaultOptions,
	}
	if cfg.AuthSecret != "" {
		s.tokens = NewTokenService(cfg.AuthSecret)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /v1/match", s.protected(http.HandlerFunc(s.handleMatch)))
	mux.Handle("POST /v1/match/batch", s.protected(http.HandlerFunc(s.handleMatchBatch)))
	mux.Handle("GET /v1/weights", s.protected(http.HandlerFunc(s.handleWeights)))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.rateLimiter.Middleware(s.withLogging(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// protected wraps a handler with bearer auth when a secret is configured.
func (s *Server) protected(next http.Handler) http.Handler {
	if s.tokens == nil {
		return next
	}
	return middleware.Auth(s.tokens)(next)
}

// withLogging logs one line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// Start listens until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
