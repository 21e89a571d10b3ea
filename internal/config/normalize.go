package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDatabase()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if c.Ingest.DryRunLimit < 0 {
		c.Ingest.DryRunLimit = 0
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeDatabase() {
	c.Database.URL = strings.TrimSpace(c.Database.URL)
	c.Database.Source = ""
	if c.Database.URL != "" {
		c.Database.Source = SourceFile
		return
	}
	if value, ok := os.LookupEnv("DATABASE_URL"); ok {
		c.Database.URL = strings.TrimSpace(value)
		if c.Database.URL != "" {
			c.Database.Source = SourceEnv
		}
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ResultsCSV) == "" {
		c.Paths.ResultsCSV = defaultResultsCSV
	}
	if c.Paths.ResultsCSV, err = expandPath(c.Paths.ResultsCSV); err != nil {
		return fmt.Errorf("paths.results_csv: %w", err)
	}
	if strings.TrimSpace(c.Paths.RosterCSV) == "" {
		c.Paths.RosterCSV = defaultRosterCSV
	}
	if c.Paths.RosterCSV, err = expandPath(c.Paths.RosterCSV); err != nil {
		return fmt.Errorf("paths.roster_csv: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("PROTRACKER_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
