// Package server wires configuration for the stage process.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/platform/otel"
	"github.com/tenchairs/stage/internal/services/stage"
)

const defaultHTTPAddr = ":8080"

// Config holds the stage command configuration.
type Config struct {
	HTTPAddr string
	DBPath   string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr: envOrDefault(lookup, []string{"STAGE_HTTP_ADDR"}, defaultHTTPAddr),
		DBPath:   envOrDefault(lookup, []string{"STAGE_DB_PATH"}, filepath.Join("data", "stage.db")),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to sqlite database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the stage server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "stage")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	server, err := stage.New(stage.Config{
		HTTPAddr: cfg.HTTPAddr,
		DBPath:   cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("init stage server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve stage: %w", err)
	}
	return nil
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
