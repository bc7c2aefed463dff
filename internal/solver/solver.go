package solver

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/rmarches/collapse/internal/wfc"
)

// DefaultMaxSteps bounds the number of Step calls per run. A Sudoku needs
// well under a hundred; the generous default only guards against rule
// sets that retry without converging.
const DefaultMaxSteps = 1000

// Status is the terminal state of a solve run.
type Status string

const (
	// StatusSolved means every tile is definite and, when a verifier is
	// configured, the grid passed it.
	StatusSolved Status = "solved"

	// StatusStuck means the engine hit a contradiction with no rollback
	// alternative, or a configured verifier rejected a nominally solved
	// grid (a contradiction the engine's single-pass propagation missed).
	StatusStuck Status = "stuck"

	// StatusQuotaExceeded means the run was cut off after MaxSteps calls
	// without reaching a terminal engine state.
	StatusQuotaExceeded Status = "quota_exceeded"
)

// Event records one Step call for the run trace.
type Event struct {
	Seq    int64          // monotonic sequence number within the run
	Status wfc.StepStatus // what the step did
	Cell   int            // linear index of the selected cell, -1 if none
	Value  string         // committed value, "" unless Status is StepCollapsed
	Forced int            // cells collapsed for free during propagation
}

// Result is the outcome of a run.
type Result struct {
	Status Status
	Steps  int     // number of Step calls made
	Trace  []Event // one entry per Step call, in order
	Err    error   // verifier failure detail when StatusStuck came from it
}

// Solver drives one wfc engine to a terminal state.
type Solver[T cmp.Ordered] struct {
	w        *wfc.Wfc[T]
	maxSteps int
	verify   func() error
	clock    *Clock
	logger   *slog.Logger
}

// Option configures a Solver.
type Option[T cmp.Ordered] func(*Solver[T])

// WithMaxSteps overrides the per-run step quota.
func WithMaxSteps[T cmp.Ordered](n int) Option[T] {
	return func(s *Solver[T]) {
		s.maxSteps = n
	}
}

// WithVerify installs a check run after the engine reports solved. A
// non-nil result downgrades the run to StatusStuck, carrying the error.
func WithVerify[T cmp.Ordered](verify func() error) Option[T] {
	return func(s *Solver[T]) {
		s.verify = verify
	}
}

// WithLogger sets the logger for per-step progress output.
// The default logger discards nothing; pass slog.New against a discard
// handler to silence the solver.
func WithLogger[T cmp.Ordered](logger *slog.Logger) Option[T] {
	return func(s *Solver[T]) {
		s.logger = logger
	}
}

// New creates a solver over the given engine.
func New[T cmp.Ordered](w *wfc.Wfc[T], opts ...Option[T]) *Solver[T] {
	s := &Solver[T]{
		w:        w,
		maxSteps: DefaultMaxSteps,
		clock:    NewClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Run steps the engine until it solves, gets stuck, the quota runs out or
// ctx is canceled. The returned error is non-nil only for cancellation;
// stuck and quota-exceeded runs are legitimate outcomes, reported through
// Result.Status.
func (s *Solver[T]) Run(ctx context.Context) (Result, error) {
	var trace []Event
	steps := 0

	for {
		if err := ctx.Err(); err != nil {
			return Result{Status: StatusStuck, Steps: steps, Trace: trace}, fmt.Errorf("solver: run canceled: %w", err)
		}
		if steps >= s.maxSteps {
			s.logger.Warn("step quota exceeded", "steps", steps, "limit", s.maxSteps)
			return Result{Status: StatusQuotaExceeded, Steps: steps, Trace: trace}, nil
		}

		out := s.w.Step()
		if out.Status == wfc.StepSolved {
			if s.verify != nil {
				if err := s.verify(); err != nil {
					s.logger.Warn("solved grid failed verification", "error", err)
					return Result{Status: StatusStuck, Steps: steps, Trace: trace, Err: err}, nil
				}
			}
			s.logger.Info("solved", "steps", steps)
			return Result{Status: StatusSolved, Steps: steps, Trace: trace}, nil
		}

		steps++
		ev := Event{
			Seq:    s.clock.Next(),
			Status: out.Status,
			Cell:   out.Cell,
			Forced: out.Forced,
		}
		if out.Status == wfc.StepCollapsed {
			ev.Value = fmt.Sprint(s.w.AtIndex(out.Cell).Value())
		}
		trace = append(trace, ev)
		s.logger.Debug("step",
			"seq", ev.Seq,
			"status", ev.Status.String(),
			"cell", ev.Cell,
			"forced", ev.Forced,
			"remaining", s.w.Remaining(),
		)

		if out.Status == wfc.StepStuck {
			s.logger.Warn("stuck", "cell", out.Cell, "steps", steps)
			return Result{Status: StatusStuck, Steps: steps, Trace: trace}, nil
		}
	}
}
