package preflight

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"protracker/internal/tourdb"
)

// CheckDatabase opens dsn and reports connectivity and accent folding.
// It uses a 10-second timeout.
func CheckDatabase(ctx context.Context, dsn string, logger *slog.Logger) []Result {
	const name = "Database"
	if dsn == "" {
		return []Result{{Name: name, Detail: "no connection string (set database.url or DATABASE_URL)"}}
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := tourdb.Open(checkCtx, dsn, logger)
	if err != nil {
		return []Result{{Name: name, Detail: fmt.Sprintf("connect failed (%v)", err)}}
	}
	defer db.Close()

	results := []Result{{Name: name, Passed: true, Detail: fmt.Sprintf("connected (%s)", db.Backend())}}
	accent := Result{Name: "Accent matching", Passed: true, Detail: "available"}
	if !db.AccentFolding() {
		accent.Warning = true
		accent.Detail = "disabled (CREATE EXTENSION unaccent;)"
	}
	return append(results, accent)
}

// CheckFileReadable verifies that path is a readable regular file.
func CheckFileReadable(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
