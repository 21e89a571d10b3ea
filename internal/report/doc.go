// Package report renders command results for the terminal: the roster
// reconciliation report and the import and qualification summaries.
package report
