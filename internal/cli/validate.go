package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ValidateReport is the validate command's result payload.
type ValidateReport struct {
	Puzzle string `json:"puzzle"`
	Givens int    `json:"givens"`
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <puzzle-file>",
		Short: "Check a puzzle file without solving it",
		Long: `Check that a puzzle file parses, satisfies the puzzle schema and has
no conflicting givens.

CUE puzzle files look like:

  puzzle: {
      name: "easy-1"
      grid: """
          53..7....
          6..195...
          .98....6.
          8...6...3
          4..8.3..1
          7...2...6
          .6....28.
          ...419..5
          ....8..79
          """
  }`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args[0])
		},
	}
	return cmd
}

func runValidate(cmd *cobra.Command, rootOpts *RootOptions, path string) error {
	doc, puzzle, err := LoadPuzzleFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load puzzle", err)
	}

	report := ValidateReport{
		Puzzle: doc.Name,
		Givens: puzzle.Givens(),
		Valid:  true,
	}
	if err := puzzle.Validate(); err != nil {
		report.Valid = false
		report.Error = err.Error()
	}

	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	if err := formatter.Emit(report, func(w io.Writer) error {
		if report.Valid {
			fmt.Fprintf(w, "%s: ok (%d givens)\n", report.Puzzle, report.Givens)
		} else {
			fmt.Fprintf(w, "%s: invalid: %s\n", report.Puzzle, report.Error)
		}
		return nil
	}); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}

	if !report.Valid {
		return NewExitError(ExitFailure, "puzzle has conflicting givens")
	}
	return nil
}
