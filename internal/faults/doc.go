// Package faults classifies command failures.
//
// Every error that reaches the command layer is tagged with one of four
// sentinels (usage, connection, input, processing) via Wrap, so callers can
// decide with errors.Is whether to print usage text. All classes exit with
// status 1.
package faults
