// Package rosterimport loads players into the stage database from a CSV
// file, so a tournament roster can be prepared before going live.
package rosterimport

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/service"
	"github.com/tenchairs/stage/internal/game/storage"
	gamesqlite "github.com/tenchairs/stage/internal/game/storage/sqlite"
	"github.com/tenchairs/stage/internal/platform/config"
)

// importerEnv captures startup defaults for the importer.
type importerEnv struct {
	DBPath string `env:"STAGE_DB_PATH"`
}

func loadImporterEnv() importerEnv {
	var cfg importerEnv
	_ = config.ParseEnv(&cfg)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "stage.db")
	}
	return cfg
}

// Config holds the importer configuration.
type Config struct {
	DBPath   string
	FilePath string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	env := loadImporterEnv()
	cfg := Config{DBPath: env.DBPath}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to sqlite database")
	fs.StringVar(&cfg.FilePath, "file", "", "CSV file with nickname,external_id,photo_url rows")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.FilePath) == "" {
		return Config{}, errors.New("-file is required")
	}
	return cfg, nil
}

// Run imports the roster file and reports one line per row to out.
// Rows whose external id is already registered are skipped, so re-running
// the import against the same file is safe.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	file, err := os.Open(cfg.FilePath)
	if err != nil {
		return fmt.Errorf("open roster file: %w", err)
	}
	defer file.Close()

	store, err := gamesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open game store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(out, "Warning: close store: %v\n", err)
		}
	}()

	registry := service.NewPlayerRegistry(service.Stores{Players: store})

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	line := 0
	imported := 0
	skipped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read roster file: %w", err)
		}
		line++

		input, err := rowToInput(record)
		if err != nil {
			return fmt.Errorf("row %d: %w", line, err)
		}

		player, err := registry.Register(ctx, input)
		if errors.Is(err, storage.ErrAlreadyExists) {
			skipped++
			fmt.Fprintf(out, "skip %s: already registered\n", input.Nickname)
			continue
		}
		if err != nil {
			return fmt.Errorf("row %d: register %s: %w", line, input.Nickname, err)
		}
		imported++
		fmt.Fprintf(out, "registered %s as %s\n", player.Nickname, player.ID)
	}

	fmt.Fprintf(out, "done: %d registered, %d skipped\n", imported, skipped)
	return nil
}

func rowToInput(record []string) (domain.CreatePlayerInput, error) {
	if len(record) == 0 || len(record) > 3 {
		return domain.CreatePlayerInput{}, errors.New("expected nickname,external_id,photo_url")
	}
	input := domain.CreatePlayerInput{Nickname: record[0]}
	if len(record) > 1 {
		input.ExternalID = record[1]
	}
	if len(record) > 2 {
		input.PhotoURL = record[2]
	}
	return input, nil
}
