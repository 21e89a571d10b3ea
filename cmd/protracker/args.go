package main

import (
	"github.com/spf13/cobra"

	"protracker/internal/faults"
)

// connectionArgs accepts an optional connection string.
func connectionArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageError(cmd, faults.Usage("expected at most one connection string, got %d arguments", len(args)))
	}
	return nil
}
