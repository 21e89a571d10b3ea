package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"protracker/internal/faults"
	"protracker/internal/logging"
	"protracker/internal/reconcile"
	"protracker/internal/report"
	"protracker/internal/roster"
)

func newFindPlayersCommand(ctx *commandContext) *cobra.Command {
	var csvFlag string

	cmd := &cobra.Command{
		Use:   "find-new-players [connection-string]",
		Short: "Report roster names missing from the database",
		Long: "Read a headerless First,Last roster and report which names are new,\n" +
			"which already exist, and which new names look like stored players.",
		Args: connectionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dsn, err := requireConnection(cmd, cfg, args)
			if err != nil {
				return err
			}
			path, err := csvPath(csvFlag, cfg.Paths.RosterCSV)
			if err != nil {
				return err
			}

			r, err := ctx.startRun(cmd, dsn, runOptions{})
			if err != nil {
				return err
			}
			defer r.close()

			if !r.db.AccentFolding() {
				logging.WarnWithContext(r.logger, "accent matching disabled", "unaccent_unavailable",
					logging.String(logging.FieldErrorHint, "run CREATE EXTENSION unaccent;"),
					logging.String(logging.FieldImpact, "names differing only by accents are not flagged"),
				)
			}

			r.logger.Info("reading roster", logging.String("csv", path))
			entries, err := roster.OpenNames(path)
			if err != nil {
				return faults.Wrap(faults.ErrInput, "csv", "read roster", path, err)
			}

			res, err := reconcile.New(r.db, r.logger).Run(r.ctx, entries)
			if err != nil {
				return fmt.Errorf("find new players: %w", err)
			}
			out := cmd.OutOrStdout()
			return report.Reconciliation(out, res, report.ShouldColorize(out))
		},
	}

	cmd.Flags().StringVar(&csvFlag, "csv", "", "Roster path (default paths.roster_csv)")
	return cmd
}
