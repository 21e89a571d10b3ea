package tourdb

import (
	"errors"
	"strings"
)

// Backend identifies the SQL engine behind a DB.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// ParseDSN picks the backend for a connection string and returns the string
// to hand to its driver. sqlite:<path>, file: URIs, :memory: and paths ending
// in .db, .sqlite or .sqlite3 select SQLite; everything else is passed to pgx
// as a URL or key=value DSN.
func ParseDSN(dsn string) (Backend, string, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return "", "", errors.New("connection string is empty")
	}
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "sqlite://"):
		return BackendSQLite, trimmed[len("sqlite://"):], nil
	case strings.HasPrefix(lower, "sqlite:"):
		return BackendSQLite, trimmed[len("sqlite:"):], nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return BackendSQLite, trimmed, nil
	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		return BackendSQLite, trimmed, nil
	default:
		return BackendPostgres, trimmed, nil
	}
}
