package wfc

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Wfc is the Wave Function Collapse engine.
//
// It exclusively owns a width x height grid of tiles in row-major order
// and a Rules instance for the value domain T. All mutation happens inside
// Step; everything else is a read-only accessor.
//
// INVARIANTS:
//   - width and height are fixed at construction and never change
//   - len(tiles) == width*height at all times
//   - position (x, y) maps to linear index y*width + x
//
// Not safe for concurrent use.
type Wfc[T cmp.Ordered] struct {
	width  int
	height int
	rules  Rules[T]
	tiles  []Tile[T]
	rng    *rand.Rand

	// stuck latches when a contradiction had no rollback alternative.
	// Once set, Step reports StepStuck forever; see step.go.
	stuck     bool
	stuckCell int
}

// Option configures an engine at construction time.
type Option[T cmp.Ordered] func(*Wfc[T])

// WithRand sets the random source used for cell selection and candidate
// choice. Pass a seeded source for reproducible runs; the default source
// is seeded from the global generator and differs between runs.
func WithRand[T cmp.Ordered](rng *rand.Rand) Option[T] {
	return func(w *Wfc[T]) {
		w.rng = rng
	}
}

// New creates an engine over the given tiles.
//
// The tiles slice is copied so later mutation by the caller cannot break
// the engine's exclusive ownership of the grid.
//
// Panics if width or height is not positive or len(tiles) != width*height;
// malformed construction is a programming error, not a runtime condition.
func New[T cmp.Ordered](width, height int, tiles []Tile[T], rules Rules[T], opts ...Option[T]) *Wfc[T] {
	if width <= 0 {
		panic(fmt.Sprintf("wfc: width must be positive, got %d", width))
	}
	if height <= 0 {
		panic(fmt.Sprintf("wfc: height must be positive, got %d", height))
	}
	if len(tiles) != width*height {
		panic(fmt.Sprintf("wfc: got %d tiles, want width*height = %d", len(tiles), width*height))
	}
	if rules == nil {
		panic("wfc: rules must not be nil")
	}

	w := &Wfc[T]{
		width:     width,
		height:    height,
		rules:     rules,
		tiles:     slices.Clone(tiles),
		stuckCell: -1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return w
}

// Width returns the grid width.
func (w *Wfc[T]) Width() int {
	return w.width
}

// Height returns the grid height.
func (w *Wfc[T]) Height() int {
	return w.height
}

// Index converts an (x, y) position into a linear grid index.
func (w *Wfc[T]) Index(x, y int) int {
	return y*w.width + x
}

// View returns a read-only view centered at the linear index idx.
// Panics if idx is outside the grid.
func (w *Wfc[T]) View(idx int) View[T] {
	if idx < 0 || idx >= w.width*w.height {
		panic(fmt.Sprintf("wfc: view index %d outside grid of %d tiles", idx, w.width*w.height))
	}
	return View[T]{wfc: w, x: idx % w.width, y: idx / w.width}
}

// ViewAt returns a read-only view centered at (x, y).
// Panics if the position is outside the grid.
func (w *Wfc[T]) ViewAt(x, y int) View[T] {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		panic(fmt.Sprintf("wfc: view position (%d, %d) outside %dx%d grid", x, y, w.width, w.height))
	}
	return View[T]{wfc: w, x: x, y: y}
}

// At returns the tile at (x, y).
// Panics if the position is outside the grid.
func (w *Wfc[T]) At(x, y int) Tile[T] {
	return w.ViewAt(x, y).Tile()
}

// AtIndex returns the tile at the linear index idx.
// Panics if idx is outside the grid.
func (w *Wfc[T]) AtIndex(idx int) Tile[T] {
	if idx < 0 || idx >= len(w.tiles) {
		panic(fmt.Sprintf("wfc: tile index %d outside grid of %d tiles", idx, len(w.tiles)))
	}
	return w.tiles[idx]
}

// Remaining returns the number of indefinite tiles left in the grid.
func (w *Wfc[T]) Remaining() int {
	n := 0
	for _, t := range w.tiles {
		if t.IsIndefinite() {
			n++
		}
	}
	return n
}

// Stuck reports whether the engine has latched into the terminal stuck
// state. See Step.
func (w *Wfc[T]) Stuck() bool {
	return w.stuck
}

// entropy scores a tile through the rule set, falling back to the
// constant default when the rule set does not implement EntropyScorer.
func (w *Wfc[T]) entropy(t Tile[T]) float64 {
	if scorer, ok := w.rules.(EntropyScorer[T]); ok {
		return scorer.Entropy(t)
	}
	return 0
}
