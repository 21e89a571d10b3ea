package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"protracker/internal/faults"
	"protracker/internal/logging"
	"protracker/internal/qualify"
	"protracker/internal/report"
	"protracker/internal/roster"
)

func newQualifyCommand(ctx *commandContext) *cobra.Command {
	var (
		csvFlag string
		dryRun  bool
		eventID int64
	)

	cmd := &cobra.Command{
		Use:   "add-qualifications [connection-string]",
		Short: "Record notable qualifications for a roster",
		Long: "Read a headerless First,Last roster, create missing players, and record\n" +
			"a notable qualification for each at the configured event.",
		Args: connectionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("event-id") {
				eventID = cfg.Qualifications.EventID
			}
			if eventID <= 0 {
				return usageError(cmd, faults.Usage("--event-id must be positive"))
			}
			dsn, err := requireConnection(cmd, cfg, args)
			if err != nil {
				return err
			}
			path, err := csvPath(csvFlag, cfg.Paths.RosterCSV)
			if err != nil {
				return err
			}

			r, err := ctx.startRun(cmd, dsn, runOptions{exclusive: !dryRun})
			if err != nil {
				return err
			}
			defer r.close()

			r.logger.Info("reading roster",
				logging.String("csv", path),
				logging.Int64("event_id", eventID),
				logging.Bool(logging.FieldDryRun, dryRun),
			)
			entries, err := roster.OpenNames(path)
			if err != nil {
				return faults.Wrap(faults.ErrInput, "csv", "read roster", path, err)
			}

			out := cmd.OutOrStdout()
			summary, err := qualify.New(r.db, r.logger).Run(r.ctx, entries, qualify.Options{
				EventID: eventID,
				DryRun:  dryRun,
				Preview: out,
			})
			if err != nil {
				return fmt.Errorf("add qualifications: %w", err)
			}
			return report.Qualifications(out, summary, eventID, report.ShouldColorize(out))
		},
	}

	cmd.Flags().StringVar(&csvFlag, "csv", "", "Roster path (default paths.roster_csv)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print SQL instead of writing")
	cmd.Flags().Int64Var(&eventID, "event-id", 0, "Event to record qualifications for (default qualifications.event_id)")
	return cmd
}
