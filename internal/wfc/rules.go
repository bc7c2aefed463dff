package wfc

import "cmp"

// Rules supplies the constraint semantics for a value domain.
// Implemented by consumers of the engine (e.g. the Sudoku rule set).
//
// States must be a pure function of the current grid contents: no hidden
// state, no side effects. Within one propagation pass the engine queries
// every remaining indefinite cell against the same logical snapshot (the
// just-committed value is placed, all other indefinite cells are as they
// were before the step), so implementations must not depend on sibling
// query results.
type Rules[T cmp.Ordered] interface {
	// States returns the set of values still legal at the view's position,
	// computed from whatever neighboring cells the rule inspects through
	// the view's row, column, span and section accessors. An empty result
	// signals a contradiction at that position.
	States(view View[T]) Set[T]
}

// EntropyScorer is optionally implemented by a Rules value to bias which
// indefinite cell the engine collapses next. Lower scores collapse first;
// ties are broken uniformly at random.
//
// Entropy must be pure. It is only ever invoked on indefinite tiles.
// Rule sets that do not implement it get a constant score of zero, which
// degenerates selection to uniform random over all indefinite cells.
type EntropyScorer[T cmp.Ordered] interface {
	Entropy(tile Tile[T]) float64
}
