package wfc

import (
	"cmp"
	"iter"
)

// Range is a half-open interval [Start, End) over grid coordinates.
type Range struct {
	Start int
	End   int
}

// Len returns the number of coordinates covered by the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Span is a read-only rectangular window over the grid.
//
// It holds sub-slices of the grid's rows and copies no tiles: a span taken
// from a live engine observes the grid as it was at the instant of
// construction and must not be retained across a mutation (in practice,
// past the Rules call that received its View). Rows, columns and Sudoku
// boxes are all spans; a column span holds one single-tile slice per row.
type Span[T cmp.Ordered] struct {
	rows [][]Tile[T]
}

// Width returns the length of each row in the span.
func (s Span[T]) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Height returns the number of rows in the span.
func (s Span[T]) Height() int {
	return len(s.rows)
}

// RowIter iterates the span's tiles in row-major order.
//
// The sequence is lazy, finite and restartable: ranging over it again
// starts from the first tile. Order matches the construction order of the
// underlying row slices exactly.
func (s Span[T]) RowIter() iter.Seq[Tile[T]] {
	return func(yield func(Tile[T]) bool) {
		for _, row := range s.rows {
			for _, t := range row {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// ColIter iterates the span's tiles in column-major order: every row
// contributes its x-th tile before x advances.
func (s Span[T]) ColIter() iter.Seq[Tile[T]] {
	return func(yield func(Tile[T]) bool) {
		for x := 0; x < s.Width(); x++ {
			for _, row := range s.rows {
				if !yield(row[x]) {
					return
				}
			}
		}
	}
}
