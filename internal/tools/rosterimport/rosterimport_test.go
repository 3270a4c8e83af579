package rosterimport

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigRequiresFile(t *testing.T) {
	fs := flag.NewFlagSet("roster-import", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for missing -file")
	}
}

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("roster-import", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-db-path", "stage.db", "-file", "roster.csv"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "stage.db" {
		t.Fatalf("db path = %q, want stage.db", cfg.DBPath)
	}
	if cfg.FilePath != "roster.csv" {
		t.Fatalf("file path = %q, want roster.csv", cfg.FilePath)
	}
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roster.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func TestRunImportsRoster(t *testing.T) {
	t.Parallel()

	cfg := Config{
		DBPath:   filepath.Join(t.TempDir(), "stage.db"),
		FilePath: writeRoster(t, "Ada,ext-1,https://example.com/ada.png\nGrace,ext-2,\n"),
	}

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "done: 2 registered, 0 skipped") {
		t.Fatalf("output = %q, want 2 registered", out.String())
	}
}

func TestRunSkipsAlreadyRegistered(t *testing.T) {
	t.Parallel()

	cfg := Config{
		DBPath:   filepath.Join(t.TempDir(), "stage.db"),
		FilePath: writeRoster(t, "Ada,ext-1,\n"),
	}

	var first bytes.Buffer
	if err := Run(context.Background(), cfg, &first); err != nil {
		t.Fatalf("first run: %v", err)
	}

	var second bytes.Buffer
	if err := Run(context.Background(), cfg, &second); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !strings.Contains(second.String(), "done: 0 registered, 1 skipped") {
		t.Fatalf("output = %q, want 1 skipped", second.String())
	}
}

func TestRunRejectsEmptyNickname(t *testing.T) {
	t.Parallel()

	cfg := Config{
		DBPath:   filepath.Join(t.TempDir(), "stage.db"),
		FilePath: writeRoster(t, "  ,ext-1,\n"),
	}

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err == nil {
		t.Fatal("expected error for empty nickname")
	}
}
