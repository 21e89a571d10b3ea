package tourdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"protracker/internal/logging"
)

// querier is the subset of *sql.DB and *sql.Tx the queries need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is an open tournament database.
type DB struct {
	queries
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to the database named by dsn, verifies the connection, and
// probes for accent folding support.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*DB, error) {
	backend, driverDSN, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	logger = logging.NewComponentLogger(logger, "tourdb")

	var db *sql.DB
	switch backend {
	case BackendSQLite:
		db, err = openSQLite(ctx, driverDSN)
	default:
		db, err = openPostgres(ctx, driverDSN)
	}
	if err != nil {
		return nil, err
	}

	store := &DB{
		queries: queries{q: db, d: dialect{backend: backend}},
		db:      db,
		logger:  logger,
	}
	accent, err := store.probeAccentFolding(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store.accent = accent
	logger.Debug("database opened",
		logging.String("backend", string(backend)),
		logging.Bool("accent_folding", accent),
	)
	return store, nil
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Backend reports which engine the DB talks to.
func (s *DB) Backend() Backend {
	return s.d.backend
}

// AccentFolding reports whether accent-insensitive lookups are available.
func (s *DB) AccentFolding() bool {
	return s.accent
}

// Close closes the underlying database connection.
func (s *DB) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *DB) probeAccentFolding(ctx context.Context) (bool, error) {
	if s.d.backend == BackendSQLite {
		var out string
		if err := s.db.QueryRowContext(ctx, "SELECT unaccent('é')").Scan(&out); err != nil {
			s.logger.Debug("unaccent function missing", logging.Error(err))
			return false, nil
		}
		return out == "e", nil
	}
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_extension WHERE extname = 'unaccent')",
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("probe unaccent extension: %w", err)
	}
	return exists, nil
}
