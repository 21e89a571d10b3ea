package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"protracker/internal/config"
	"protracker/internal/faults"
	"protracker/internal/logging"
	"protracker/internal/runlock"
	"protracker/internal/tourdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// run carries the per-invocation state shared by the data commands.
type run struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	logger *slog.Logger
	db     *tourdb.DB
	lock   *runlock.Lock
}

type runOptions struct {
	// exclusive takes the state directory lock before opening the database.
	exclusive bool
}

// sourceArgument marks a connection string given on the command line.
const sourceArgument = "argument"

// connection returns the connection string and where it came from. A
// positional argument wins over database.url and DATABASE_URL.
func connection(cfg *config.Config, args []string) (string, string) {
	if len(args) > 0 {
		if dsn := strings.TrimSpace(args[0]); dsn != "" {
			return dsn, sourceArgument
		}
	}
	return cfg.Database.URL, cfg.Database.Source
}

// requireConnection is connection for commands that cannot run without a
// database; a missing connection string prints usage.
func requireConnection(cmd *cobra.Command, cfg *config.Config, args []string) (string, error) {
	dsn, _ := connection(cfg, args)
	if dsn == "" {
		return "", usageError(cmd, faults.Usage("connection string required (argument, database.url or DATABASE_URL)"))
	}
	return dsn, nil
}

// startRun builds the logger, takes the lock when asked, and opens dsn.
// Callers must defer close.
func (c *commandContext) startRun(cmd *cobra.Command, dsn string, opts runOptions) (*run, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	ctx = logging.WithRun(ctx, uuid.NewString(), cmd.Name())
	logger = logging.WithContext(ctx, logger)

	r := &run{ctx: ctx, cancel: cancel, cfg: cfg, logger: logger}

	if opts.exclusive {
		lock, err := runlock.Acquire(cfg.LockPath())
		if err != nil {
			r.close()
			if errors.Is(err, runlock.ErrHeld) {
				return nil, fmt.Errorf("%w: %w", faults.ErrUsage, err)
			}
			return nil, err
		}
		r.lock = lock
	}

	db, err := tourdb.Open(ctx, dsn, logger)
	if err != nil {
		r.close()
		return nil, faults.Wrap(faults.ErrConnection, "database", "open", "", err)
	}
	r.db = db
	logger.Info("connected to database", logging.String("backend", string(db.Backend())))
	return r, nil
}

func (r *run) close() {
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			r.logger.Warn("close database", logging.Error(err))
		}
	}
	if err := r.lock.Release(); err != nil {
		r.logger.Warn("release lock", logging.Error(err))
	}
	r.cancel()
}

// csvPath returns flagValue or fallback and checks the file exists.
func csvPath(flagValue, fallback string) (string, error) {
	path := strings.TrimSpace(flagValue)
	if path == "" {
		path = fallback
	} else {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return "", faults.Usage("resolve csv path: %v", err)
		}
		path = expanded
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", faults.Wrap(faults.ErrInput, "csv", "open", "could not find "+path, nil)
		}
		return "", faults.Wrap(faults.ErrInput, "csv", "stat", path, err)
	}
	return path, nil
}

// usageError prints the command usage to stderr and returns err.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
