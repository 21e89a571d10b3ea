package testsupport

import (
	"path/filepath"
	"testing"

	"protracker/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory with a
// SQLite database URL. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Database.URL = filepath.Join(base, "tour.db")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.ResultsCSV = filepath.Join(base, "data.csv")
	cfgVal.Paths.RosterCSV = filepath.Join(base, "roster.csv")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithEventID overrides the qualification event.
func WithEventID(id int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Qualifications.EventID = id
	}
}

// WithDryRunLimit overrides the default dry-run row cap.
func WithDryRunLimit(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ingest.DryRunLimit = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
