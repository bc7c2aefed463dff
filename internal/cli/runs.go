package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmarches/collapse/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
	RunID    string
}

// RunReport is one archived run in the runs command's output.
type RunReport struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Status    string            `json:"status"`
	Steps     int               `json:"steps"`
	Seed      int64             `json:"seed"`
	Trace     []store.StepRecord `json:"trace,omitempty"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect archived solve runs",
		Long: `List solve runs archived with 'solve --db', or show one run's step
trace with --run.

Example:
  collapse runs --db ./runs.db
  collapse runs --db ./runs.db --run 0198c7a2-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the SQLite run archive (required)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the step trace of one run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(cmd *cobra.Command, opts *RunsOptions) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if opts.RunID != "" {
		run, err := st.GetRun(cmd.Context(), opts.RunID)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read run", err)
		}
		trace, err := st.ReadSteps(cmd.Context(), opts.RunID)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read run trace", err)
		}
		report := RunReport{
			ID:        run.ID,
			CreatedAt: run.CreatedAt,
			Status:    run.Status,
			Steps:     run.Steps,
			Seed:      run.Seed,
			Trace:     trace,
		}
		return emitRunDetail(formatter, report)
	}

	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}
	reports := make([]RunReport, 0, len(runs))
	for _, run := range runs {
		reports = append(reports, RunReport{
			ID:        run.ID,
			CreatedAt: run.CreatedAt,
			Status:    run.Status,
			Steps:     run.Steps,
			Seed:      run.Seed,
		})
	}
	return emitRunList(formatter, reports)
}

func emitRunList(formatter *OutputFormatter, reports []RunReport) error {
	return formatter.Emit(reports, func(w io.Writer) error {
		if len(reports) == 0 {
			fmt.Fprintln(w, "no runs archived")
			return nil
		}
		for _, r := range reports {
			fmt.Fprintf(w, "%s  %s  %-15s %4d steps  seed %d\n",
				r.ID, r.CreatedAt.Format(time.RFC3339), r.Status, r.Steps, r.Seed)
		}
		return nil
	})
}

func emitRunDetail(formatter *OutputFormatter, report RunReport) error {
	return formatter.Emit(report, func(w io.Writer) error {
		fmt.Fprintf(w, "run %s: %s in %d steps (seed %d)\n",
			report.ID, report.Status, report.Steps, report.Seed)
		for _, step := range report.Trace {
			fmt.Fprintf(w, "  %4d  %-10s cell %2d", step.Seq, step.Status, step.Cell)
			if step.Value != "" {
				fmt.Fprintf(w, " = %s", step.Value)
			}
			if step.Forced > 0 {
				fmt.Fprintf(w, "  (+%d forced)", step.Forced)
			}
			fmt.Fprintln(w)
		}
		return nil
	})
}
