// Package tourdb is the database layer shared by the protracker commands.
//
// A DB talks to either PostgreSQL (through the pgx database/sql driver) or
// SQLite (modernc.org/sqlite, schema created on first open). Both expose the
// same player lookups, so a DB satisfies players.Lookup, and the same write
// operations inside a Tx. Case-insensitive comparisons use ILIKE on
// PostgreSQL and registered fold/unaccent scalar functions on SQLite.
//
// Accent folding on PostgreSQL depends on the unaccent extension. Open probes
// for it once; when it is missing accent-insensitive lookups report
// players.ErrAccentFoldingUnavailable instead of failing.
//
// A Tx opened in dry-run mode performs lookups but renders every write as SQL
// to a preview writer instead of executing it, and always rolls back.
package tourdb
