// Package stage hosts the live game HTTP service: the stream overlay, the
// operator console, the roster page, and the JSON API behind them.
package stage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tenchairs/stage/internal/game/service"
	gamesqlite "github.com/tenchairs/stage/internal/game/storage/sqlite"
	"github.com/tenchairs/stage/internal/platform/timeouts"
)

// Config defines the inputs for the stage process.
type Config struct {
	HTTPAddr string
	DBPath   string
}

// Server hosts the stage HTTP surface over the sqlite-backed game store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *gamesqlite.Store
}

// New creates a configured stage server. The sqlite database is opened and
// migrated before the server starts accepting requests.
func New(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	store, err := openGameStore(config.DBPath)
	if err != nil {
		return nil, err
	}

	stores := service.Stores{Players: store, Sessions: store, Events: store}
	handler := NewHandler(
		service.NewSessionManager(stores),
		service.NewEventLedger(stores),
		service.NewPlayerRegistry(stores),
	)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           otelhttp.NewHandler(handler, "stage"),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("stage server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("stage listening on %s", s.httpAddr)
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

// Close releases the resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close game store: %v", err)
		}
	}
}

func openGameStore(path string) (*gamesqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "stage.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	store, err := gamesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open game store: %w", err)
	}
	return store, nil
}
