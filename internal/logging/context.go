package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID identifies one command invocation.
	FieldRunID = "run_id"
	// FieldCommand is the subcommand being run.
	FieldCommand = "command"
	// FieldRow is the 1-based CSV row being processed.
	FieldRow = "row"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldDryRun marks log lines emitted while no writes are performed.
	FieldDryRun = "dry_run"
)

type contextKey int

const (
	runIDKey contextKey = iota
	commandKey
)

// WithRun annotates ctx with the run identifier and command name.
func WithRun(ctx context.Context, runID, command string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, runIDKey, strings.TrimSpace(runID))
	return context.WithValue(ctx, commandKey, strings.TrimSpace(command))
}

// RunIDFromContext returns the run identifier stored by WithRun.
func RunIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, runIDKey)
}

// CommandFromContext returns the command name stored by WithRun.
func CommandFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, commandKey)
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(key).(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if cmd, ok := CommandFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCommand, cmd))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
