package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"protracker/internal/logging"
	"protracker/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckFileReadable(t *testing.T) {
	f := filepath.Join(t.TempDir(), "data.csv")
	if result := CheckFileReadable("sheet", f); result.Passed {
		t.Fatal("expected failure for missing file")
	}
	if err := os.WriteFile(f, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckFileReadable("sheet", f); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if result := CheckFileReadable("sheet", filepath.Dir(f)); result.Passed {
		t.Fatal("expected failure for directory")
	}
}

func TestCheckDatabase(t *testing.T) {
	ctx := context.Background()
	if results := CheckDatabase(ctx, "", logging.NewNop()); len(results) != 1 || results[0].Passed {
		t.Fatalf("expected single failure without dsn, got %+v", results)
	}

	dsn := filepath.Join(t.TempDir(), "tour.db")
	results := CheckDatabase(ctx, dsn, logging.NewNop())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if !results[0].Passed || !results[1].Passed || results[1].Warning {
		t.Fatalf("expected sqlite database with accent folding, got %+v", results)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	testsupport.WriteCSV(t, cfg.Paths.ResultsCSV, "Event,First,Last")

	results := RunAll(context.Background(), cfg, cfg.Database.URL, logging.NewNop())
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	// Only the roster file is missing.
	if n := Failed(results); n != 1 {
		t.Fatalf("Failed = %d, want 1: %+v", n, results)
	}
}
