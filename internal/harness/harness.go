package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/rmarches/collapse/internal/solver"
	"github.com/rmarches/collapse/internal/sudoku"
	"github.com/rmarches/collapse/internal/wfc"
)

// Result is the observable outcome of a scenario run.
type Result struct {
	Status solver.Status
	Steps  int
	Grid   string // rendered final grid
	Trace  []solver.Event
}

// Run executes a scenario and returns its outcome. The expect clause is
// not checked here; use Scenario.Check or RunWithGolden for that.
func Run(sc *Scenario) (*Result, error) {
	puzzle, err := sudoku.ParseText(sc.Grid)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	game, err := sudoku.NewGame(puzzle, wfc.WithRand[sudoku.Digit](newRand(sc.Seed)))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	opts := []solver.Option[sudoku.Digit]{
		solver.WithVerify[sudoku.Digit](func() error { return sudoku.Check(game) }),
		solver.WithLogger[sudoku.Digit](slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	if sc.MaxSteps > 0 {
		opts = append(opts, solver.WithMaxSteps[sudoku.Digit](sc.MaxSteps))
	}

	res, err := solver.New(game, opts...).Run(context.Background())
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	return &Result{
		Status: res.Status,
		Steps:  res.Steps,
		Grid:   sudoku.Render(game),
		Trace:  res.Trace,
	}, nil
}

// Check compares a run's outcome against the scenario's expect clause.
func (sc *Scenario) Check(res *Result) error {
	if string(res.Status) != sc.Expect.Status {
		return fmt.Errorf("scenario %s: status %s, want %s", sc.Name, res.Status, sc.Expect.Status)
	}
	if sc.Expect.Steps != nil && res.Steps != *sc.Expect.Steps {
		return fmt.Errorf("scenario %s: %d steps, want %d", sc.Name, res.Steps, *sc.Expect.Steps)
	}
	return nil
}

// newRand expands the scenario seed into the two PCG state words, the
// same way the solve command does, so scenario and CLI runs with equal
// seeds take identical paths.
func newRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
