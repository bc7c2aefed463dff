package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run id does not exist in the archive.
var ErrRunNotFound = errors.New("store: run not found")

// Run is one archived solve run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Puzzle    string // compact puzzle text as given to the solver
	Seed      int64
	Status    string // solver.Status value
	Steps     int
}

// StepRecord is one archived trace event of a run.
type StepRecord struct {
	Seq    int64  `json:"seq"`
	Cell   int    `json:"cell"`
	Value  string `json:"value,omitempty"`
	Status string `json:"status"`
	Forced int    `json:"forced,omitempty"`
}

// NewRunID returns a fresh time-ordered run identifier.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// WriteRun archives a run and its step trace in one transaction.
// Writing the same run id twice is a silent no-op, so retried archive
// calls stay idempotent.
func (s *Store) WriteRun(ctx context.Context, run Run, steps []StepRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, puzzle, seed, status, steps)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Puzzle,
		run.Seed,
		run.Status,
		run.Steps,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Run already archived; keep its original trace.
		return tx.Commit()
	}

	for _, step := range steps {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO run_steps (run_id, seq, cell, value, status, forced)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			run.ID, step.Seq, step.Cell, step.Value, step.Status, step.Forced,
		)
		if err != nil {
			return fmt.Errorf("write run step %d: %w", step.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// ListRuns returns all archived runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, puzzle, seed, status, steps
		FROM runs
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one archived run by id.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, puzzle, seed, status, steps
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("get run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// ReadSteps returns a run's trace in sequence order.
func (s *Store) ReadSteps(ctx context.Context, runID string) ([]StepRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, cell, value, status, forced
		FROM run_steps
		WHERE run_id = ?
		ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read steps for %s: %w", runID, err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var step StepRecord
		if err := rows.Scan(&step.Seq, &step.Cell, &step.Value, &step.Status, &step.Forced); err != nil {
			return nil, fmt.Errorf("read steps for %s: %w", runID, err)
		}
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read steps for %s: %w", runID, err)
	}
	return steps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var createdAt string
	if err := row.Scan(&run.ID, &createdAt, &run.Puzzle, &run.Seed, &run.Status, &run.Steps); err != nil {
		return Run{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = ts
	return run, nil
}
