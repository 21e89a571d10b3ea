package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"protracker/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("DATABASE_URL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "protracker")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if !filepath.IsAbs(cfg.Paths.RosterCSV) || filepath.Base(cfg.Paths.RosterCSV) != "richmond-qs.csv" {
		t.Fatalf("unexpected roster path: %q", cfg.Paths.RosterCSV)
	}
	if cfg.Qualifications.EventID != 13 {
		t.Fatalf("unexpected qualification event: %d", cfg.Qualifications.EventID)
	}
	if cfg.Ingest.DryRunLimit != 1 {
		t.Fatalf("unexpected dry run limit: %d", cfg.Ingest.DryRunLimit)
	}
	if cfg.Database.URL != "" {
		t.Fatalf("expected empty database url, got %q", cfg.Database.URL)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.StateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
	if filepath.Dir(cfg.LockPath()) != cfg.Paths.StateDir {
		t.Fatalf("lock path outside state dir: %q", cfg.LockPath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "protracker.toml")

	type payload struct {
		Database struct {
			URL string `toml:"url"`
		} `toml:"database"`
		Qualifications struct {
			EventID int64 `toml:"event_id"`
		} `toml:"qualifications"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Database.URL = "postgres://mtg@localhost/mtg"
	custom.Qualifications.EventID = 21
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Database.URL != "postgres://mtg@localhost/mtg" {
		t.Fatalf("unexpected database url: %q", cfg.Database.URL)
	}
	if cfg.Qualifications.EventID != 21 {
		t.Fatalf("unexpected event id: %d", cfg.Qualifications.EventID)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "protracker.toml")
	if err := os.WriteFile(configPath, []byte("[database]\nuri = \"oops\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestDatabaseURLFromEnvironmentAndDotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DATABASE_URL", "dbname=mtg user=postgres")
	t.Chdir(t.TempDir())

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.URL != "dbname=mtg user=postgres" {
		t.Fatalf("expected url from env, got %q", cfg.Database.URL)
	}
	if cfg.Database.Source != config.SourceEnv {
		t.Fatalf("expected source %q, got %q", config.SourceEnv, cfg.Database.Source)
	}

	dir := t.TempDir()
	t.Chdir(dir)
	os.Unsetenv("DATABASE_URL")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_URL=sqlite:tracker.db\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	cfg, _, _, err = config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.URL != "sqlite:tracker.db" {
		t.Fatalf("expected url from .env, got %q", cfg.Database.URL)
	}
}

func TestDatabaseURLFromFileWinsOverEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DATABASE_URL", "dbname=other")
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "protracker.toml")
	if err := os.WriteFile(configPath, []byte("[database]\nurl = \"sqlite:tour.db\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.URL != "sqlite:tour.db" || cfg.Database.Source != config.SourceFile {
		t.Fatalf("unexpected database %+v", cfg.Database)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "DATABASE_URL") {
		t.Fatalf("sample config missing DATABASE_URL hint: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Qualifications.EventID != 13 {
		t.Fatalf("unexpected sample event id: %d", cfg.Qualifications.EventID)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Qualifications.EventID = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive event id")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log level")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
