package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"protracker/internal/logging"
	"protracker/internal/preflight"
	"protracker/internal/report"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [connection-string]",
		Short: "Check paths and database readiness",
		Args:  connectionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dsn, _ := connection(cfg, args)
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			results := preflight.RunAll(cmd.Context(), cfg, dsn, logger)

			out := cmd.OutOrStdout()
			colorize := report.ShouldColorize(out)
			for _, line := range report.SectionHeader("System Status", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, r := range results {
				fmt.Fprintln(out, report.StatusLine(r.Name, statusKind(r), r.Detail, colorize))
			}

			if failed := preflight.Failed(results); failed > 0 {
				return fmt.Errorf("%d readiness check(s) failed", failed)
			}
			return nil
		},
	}
}

func statusKind(r preflight.Result) report.Kind {
	switch {
	case !r.Passed:
		return report.KindError
	case r.Warning:
		return report.KindWarn
	default:
		return report.KindOK
	}
}
