package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"protracker/internal/faults"
	"protracker/internal/ingest"
	"protracker/internal/logging"
	"protracker/internal/report"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var (
		csvFlag string
		dryRun  bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "ingest-results [connection-string]",
		Short: "Import tournament results from a CSV sheet",
		Long: "Import tournament results from a CSV sheet with a header row.\n" +
			"Events and players are created when missing; one result is stored per row.\n" +
			"--dry-run prints the SQL instead of executing it and defaults to one row.",
		Example: "  protracker ingest-results 'postgres://localhost/mtg' --dry-run\n" +
			"  protracker ingest-results sqlite:tour.db --limit 10",
		Args: connectionArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return usageError(cmd, faults.Usage("--limit must not be negative"))
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if dryRun && !cmd.Flags().Changed("limit") {
				limit = cfg.Ingest.DryRunLimit
			}
			dsn, err := requireConnection(cmd, cfg, args)
			if err != nil {
				return err
			}
			path, err := csvPath(csvFlag, cfg.Paths.ResultsCSV)
			if err != nil {
				return err
			}

			r, err := ctx.startRun(cmd, dsn, runOptions{exclusive: !dryRun})
			if err != nil {
				return err
			}
			defer r.close()

			r.logger.Info("processing results sheet",
				logging.String("csv", path),
				logging.Bool(logging.FieldDryRun, dryRun),
				logging.Int("limit", limit),
			)

			file, err := os.Open(path)
			if err != nil {
				return faults.Wrap(faults.ErrInput, "csv", "open", path, err)
			}
			defer file.Close()

			out := cmd.OutOrStdout()
			summary, err := ingest.New(r.db, r.logger).Run(r.ctx, file, ingest.Options{
				Limit:   limit,
				DryRun:  dryRun,
				Preview: out,
			})
			if err != nil {
				return fmt.Errorf("ingest results: %w", err)
			}
			return report.Import(out, summary, report.ShouldColorize(out))
		},
	}

	cmd.Flags().StringVar(&csvFlag, "csv", "", "Results sheet path (default paths.results_csv)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print SQL instead of writing")
	cmd.Flags().IntVar(&limit, "limit", 0, "Process at most N rows (0 means all)")
	return cmd
}
