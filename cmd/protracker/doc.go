// Package main hosts the protracker CLI entrypoint and command graph.
//
// Each subcommand reads one CSV file and applies it to the tournament
// database: ingest-results imports event results, find-new-players reports
// roster names missing from the database with likely duplicates, and
// add-qualifications records notable qualifications. Configuration
// resolution, logging setup and database opening live here so the internal
// packages only see typed inputs.
package main
