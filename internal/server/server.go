// Package server wires the Tomekeeper process: the sqlite store, the HTTP
// API handler, and a graceful start/stop lifecycle around them.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/feywood/tomekeeper/internal/api"
	"github.com/feywood/tomekeeper/internal/platform/branding"
	"github.com/feywood/tomekeeper/internal/platform/timeouts"
	"github.com/feywood/tomekeeper/internal/storage/sqlite"
)

// Config defines the inputs for the Tomekeeper server process.
type Config struct {
	HTTPAddr string
	DBPath   string
	Logger   zerolog.Logger
}

// Server hosts the HTTP API on top of the sqlite store.
type Server struct {
	httpAddr   string
	logger     zerolog.Logger
	httpServer *http.Server
	store      *sqlite.Store
}

// New opens the store, applies migrations, and prepares the HTTP server.
// Listening starts in ListenAndServe.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	dbPath := strings.TrimSpace(cfg.DBPath)
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}

	store, err := openStore(dbPath)
	if err != nil {
		return nil, err
	}

	handler := api.NewHandler(api.Config{
		Store:   store,
		Logger:  cfg.Logger,
		AppName: branding.AppName,
	})
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		logger:     cfg.Logger,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("addr", s.httpAddr).Msg("listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the storage handle held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error().Err(err).Msg("close store")
		}
	}
}

func openStore(path string) (*sqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}
