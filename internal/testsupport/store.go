package testsupport

import (
	"context"
	"testing"

	"protracker/internal/config"
	"protracker/internal/logging"
	"protracker/internal/players"
	"protracker/internal/tourdb"
)

// MustOpenDB opens the config's database for tests and registers cleanup.
func MustOpenDB(t testing.TB, cfg *config.Config) *tourdb.DB {
	t.Helper()

	db, err := tourdb.Open(context.Background(), cfg.Database.URL, logging.NewNop())
	if err != nil {
		t.Fatalf("tourdb.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SeedPlayers inserts players in order and returns their ids.
func SeedPlayers(t testing.TB, db *tourdb.DB, names ...players.Name) []int64 {
	t.Helper()

	ctx := context.Background()
	tx, err := db.Begin(ctx, tourdb.TxOptions{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := tx.CreatePlayer(ctx, name)
		if err != nil {
			t.Fatalf("CreatePlayer %s: %v", name, err)
		}
		ids = append(ids, id)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return ids
}

// SeedEvent inserts an event.
func SeedEvent(t testing.TB, db *tourdb.DB, ev tourdb.Event) {
	t.Helper()

	ctx := context.Background()
	tx, err := db.Begin(ctx, tourdb.TxOptions{})
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.CreateEvent(ctx, ev); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}
