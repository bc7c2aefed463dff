package wfc

import (
	"cmp"
	"slices"
)

// StepStatus reports the outcome of one Step call.
type StepStatus int

const (
	// StepSolved means no indefinite tiles remain. Terminal success.
	StepSolved StepStatus = iota

	// StepCollapsed means one tile was committed and every other
	// indefinite tile's candidate set was recomputed without
	// contradiction. The solve is still in progress.
	StepCollapsed

	// StepRetried means the committed value produced a contradiction and
	// was rolled back. The value is permanently excluded from the selected
	// tile; the next Step call retries from scratch.
	StepRetried

	// StepStuck means a contradiction occurred and the selected tile had
	// no alternative candidates left. Terminal failure: the engine latches
	// and every later Step returns StepStuck without touching the grid.
	StepStuck
)

func (s StepStatus) String() string {
	switch s {
	case StepSolved:
		return "solved"
	case StepCollapsed:
		return "collapsed"
	case StepRetried:
		return "retried"
	case StepStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the solve.
func (s StepStatus) Terminal() bool {
	return s == StepSolved || s == StepStuck
}

// StepOutcome describes what one Step call did.
type StepOutcome struct {
	Status StepStatus

	// Cell is the linear index of the tile selected for collapse.
	// -1 when Status is StepSolved.
	Cell int

	// Forced counts the tiles that became definite during propagation
	// because exactly one legal value remained. Only meaningful for
	// StepCollapsed.
	Forced int
}

// Step performs one collapse attempt.
//
// It scores all indefinite tiles, selects one uniformly at random among
// those sharing the lowest entropy, commits a uniformly random candidate,
// and re-queries the rule set for every other tile that was indefinite at
// the start of the step. Recomputed candidate sets are committed only if
// no cell came back empty; on contradiction the whole propagation pass is
// discarded and the selected tile is restored minus the tried value.
//
// The rollback is single-level. When the tried value was the selected
// tile's last candidate there is nothing left to retry: the tile's
// original candidate set is restored so the grid stays consistent, and the
// engine latches into the terminal stuck state.
func (w *Wfc[T]) Step() StepOutcome {
	if w.stuck {
		return StepOutcome{Status: StepStuck, Cell: w.stuckCell}
	}

	// Score every indefinite tile. The sort is stable and the scores are
	// computed in index order, so a seeded random source yields identical
	// selections across runs.
	type scoredCell struct {
		idx     int
		entropy float64
	}
	var cells []scoredCell
	for i, t := range w.tiles {
		if t.IsIndefinite() {
			cells = append(cells, scoredCell{idx: i, entropy: w.entropy(t)})
		}
	}
	if len(cells) == 0 {
		return StepOutcome{Status: StepSolved, Cell: -1}
	}
	slices.SortStableFunc(cells, func(a, b scoredCell) int {
		return cmp.Compare(a.entropy, b.entropy)
	})

	// Select uniformly among the low-entropy prefix.
	pool := 1
	for pool < len(cells) && cells[pool].entropy == cells[0].entropy {
		pool++
	}
	selected := cells[w.rng.IntN(pool)].idx

	// Commit a random candidate, keeping the rest as rollback snapshot.
	candidates := w.tiles[selected].States()
	if candidates.IsEmpty() {
		panic("wfc: indefinite tile holds an empty candidate set")
	}
	choice := candidates.at(w.rng.IntN(candidates.Len()))
	rollback := candidates.Without(choice)
	w.tiles[selected] = Definite(choice)

	// Propagate: re-query every other cell that was indefinite at the
	// start of this step against the post-commit grid. Nothing is written
	// back until the whole pass is known to be contradiction-free.
	type recomputedCell struct {
		idx    int
		states Set[T]
	}
	recomputed := make([]recomputedCell, 0, len(cells)-1)
	contradiction := false
	for _, c := range cells {
		if c.idx == selected {
			continue
		}
		legal := w.rules.States(w.View(c.idx))
		if legal.IsEmpty() {
			contradiction = true
			break
		}
		recomputed = append(recomputed, recomputedCell{idx: c.idx, states: legal})
	}

	if contradiction {
		if rollback.IsEmpty() {
			// No alternative existed for the selected tile. Restore its
			// original candidates so the grid is left uncorrupted and
			// latch the terminal state.
			w.tiles[selected] = Indefinite(candidates)
			w.stuck = true
			w.stuckCell = selected
			return StepOutcome{Status: StepStuck, Cell: selected}
		}
		// The tried value is excluded for good; the next call retries.
		w.tiles[selected] = Indefinite(rollback)
		return StepOutcome{Status: StepRetried, Cell: selected}
	}

	forced := 0
	for _, rc := range recomputed {
		if rc.states.Len() == 1 {
			w.tiles[rc.idx] = Definite(rc.states.at(0))
			forced++
		} else {
			w.tiles[rc.idx] = Indefinite(rc.states)
		}
	}
	return StepOutcome{Status: StepCollapsed, Cell: selected, Forced: forced}
}
