// Package config loads, normalizes, and validates protracker configuration.
//
// Configuration is TOML, resolved from an explicit path, then
// ~/.config/protracker/config.toml, then ./protracker.toml. A .env file in
// the working directory is honoured for DATABASE_URL. Every section has a
// default, so running without any file is supported; Load returns whether a
// file was actually found.
package config
