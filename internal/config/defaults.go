package config

const (
	defaultConfigPath     = "~/.config/protracker/config.toml"
	defaultStateDir       = "~/.local/share/protracker"
	defaultResultsCSV     = "data.csv"
	defaultRosterCSV      = "richmond-qs.csv"
	defaultDryRunLimit    = 1
	defaultQualifyEventID = 13
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:   defaultStateDir,
			ResultsCSV: defaultResultsCSV,
			RosterCSV:  defaultRosterCSV,
		},
		Ingest: Ingest{
			DryRunLimit: defaultDryRunLimit,
		},
		Qualifications: Qualifications{
			EventID: defaultQualifyEventID,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
