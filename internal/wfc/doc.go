// Package wfc implements a generic grid-based constraint-propagation
// engine using the Wave Function Collapse algorithm.
//
// The engine owns a width x height grid of tiles. Each tile is either
// Definite (committed to one value) or Indefinite (holding an ordered set
// of still-possible values). Repeated calls to Step select an indefinite
// tile, commit it to one of its candidates, and re-derive every other
// indefinite tile's candidate set through a caller-supplied Rules
// implementation, until the grid is fully definite or a contradiction
// leaves the engine stuck.
//
// ARCHITECTURE:
//
// Single-Writer Step Loop:
// The engine is single-threaded and synchronous. Step runs to completion
// before returning and all grid mutations happen inside it. Rules
// implementations observe the grid only through read-only View and Span
// windows whose validity ends with the call that received them.
//
// Step Processing Flow:
//  1. Score every indefinite tile with the rule set's entropy function
//     (constant 0 unless the rule set implements EntropyScorer).
//  2. Pick uniformly at random among the tiles sharing the lowest score.
//  3. Commit a uniformly random candidate, keeping the remaining
//     candidates as a single-level rollback snapshot.
//  4. Re-query the rule set for every other tile that was indefinite at
//     the start of the step, against the post-commit grid.
//  5. On contradiction, restore the snapshot (the tried value is excluded
//     permanently) or latch stuck when no alternative remained. Otherwise
//     commit all recomputed sets atomically with the selection.
//
// Randomness is injected via WithRand. With a fixed seed the engine is
// fully deterministic: candidate sets iterate in sorted order and the
// scored-cell ordering is stable.
//
// The rollback in Step is intentionally shallow. Only the most recent
// pick can be undone; a contradiction rooted in an earlier, already
// irreversible commit latches the engine stuck, and every later Step
// reports StepStuck without touching the grid. Callers needing
// guaranteed-complete search must layer their own backtracking on top.
package wfc
