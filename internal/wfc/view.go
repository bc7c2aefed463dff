package wfc

import (
	"cmp"
	"fmt"
)

// View is a read-only cursor into the engine's grid at one position.
//
// Rules implementations receive a view centered at the cell being
// recomputed and use it to build spans over whatever neighborhood the rule
// cares about. A view borrows the grid; it must not be retained past the
// call that received it, and no view may be held across a grid mutation.
type View[T cmp.Ordered] struct {
	wfc *Wfc[T]
	x   int
	y   int
}

// Width returns the width of the underlying grid.
func (v View[T]) Width() int {
	return v.wfc.width
}

// Height returns the height of the underlying grid.
func (v View[T]) Height() int {
	return v.wfc.height
}

// Pos returns the (x, y) position this view is centered at.
func (v View[T]) Pos() (x, y int) {
	return v.x, v.y
}

// Tile returns the tile at the view's position.
func (v View[T]) Tile() Tile[T] {
	return v.At(v.x, v.y)
}

// At returns the tile at (x, y).
// Panics if the position is outside the grid.
func (v View[T]) At(x, y int) Tile[T] {
	if x < 0 || x >= v.wfc.width || y < 0 || y >= v.wfc.height {
		panic(fmt.Sprintf("wfc: tile position (%d, %d) outside %dx%d grid", x, y, v.wfc.width, v.wfc.height))
	}
	return v.wfc.tiles[y*v.wfc.width+x]
}

// Row returns the full row at index row as a 1xWidth span.
// Panics if row is outside the grid's height.
func (v View[T]) Row(row int) Span[T] {
	if row < 0 || row >= v.wfc.height {
		panic(fmt.Sprintf("wfc: row %d outside grid height %d", row, v.wfc.height))
	}
	start := row * v.wfc.width
	return Span[T]{rows: [][]Tile[T]{v.wfc.tiles[start : start+v.wfc.width]}}
}

// Col returns the full column at index col as a span with one single-tile
// row per grid row.
// Panics if col is outside the grid's width.
func (v View[T]) Col(col int) Span[T] {
	if col < 0 || col >= v.wfc.width {
		panic(fmt.Sprintf("wfc: column %d outside grid width %d", col, v.wfc.width))
	}
	rows := make([][]Tile[T], v.wfc.height)
	for y := 0; y < v.wfc.height; y++ {
		idx := y*v.wfc.width + col
		rows[y] = v.wfc.tiles[idx : idx+1]
	}
	return Span[T]{rows: rows}
}

// Span returns the rectangular window covered by the half-open ranges
// x and y.
// Panics if either range is empty or extends outside the grid.
func (v View[T]) Span(x, y Range) Span[T] {
	v.checkRange("x", x, v.wfc.width)
	v.checkRange("y", y, v.wfc.height)
	rows := make([][]Tile[T], 0, y.Len())
	for row := y.Start; row < y.End; row++ {
		start := row * v.wfc.width
		rows = append(rows, v.wfc.tiles[start+x.Start:start+x.End])
	}
	return Span[T]{rows: rows}
}

// RowSpan returns the slice of row covered by the half-open range x.
// Panics if row is out of bounds or x is empty or extends outside the grid.
func (v View[T]) RowSpan(row int, x Range) Span[T] {
	if row < 0 || row >= v.wfc.height {
		panic(fmt.Sprintf("wfc: row %d outside grid height %d", row, v.wfc.height))
	}
	v.checkRange("x", x, v.wfc.width)
	start := row * v.wfc.width
	return Span[T]{rows: [][]Tile[T]{v.wfc.tiles[start+x.Start : start+x.End]}}
}

// ColSpan returns the slice of column col covered by the half-open range y,
// one single-tile row per covered grid row.
// Panics if col is out of bounds or y is empty or extends outside the grid.
func (v View[T]) ColSpan(col int, y Range) Span[T] {
	if col < 0 || col >= v.wfc.width {
		panic(fmt.Sprintf("wfc: column %d outside grid width %d", col, v.wfc.width))
	}
	v.checkRange("y", y, v.wfc.height)
	rows := make([][]Tile[T], 0, y.Len())
	for row := y.Start; row < y.End; row++ {
		idx := row*v.wfc.width + col
		rows = append(rows, v.wfc.tiles[idx:idx+1])
	}
	return Span[T]{rows: rows}
}

// SectionAt returns the blockW x blockH tiling block containing (x, y).
//
// The block boundary is derived by flooring the coordinate to a multiple
// of the block size, NOT by centering a window on (x, y). Sudoku's 3x3 box
// rule depends on this: SectionAt(3, 3, 4, 7) is the block spanning
// columns 3..6 and rows 6..9 regardless of where inside it (4, 7) sits.
//
// Panics if the block sizes are not positive, (x, y) is outside the grid,
// or the containing block extends past the grid edge.
func (v View[T]) SectionAt(blockW, blockH, x, y int) Span[T] {
	if blockW <= 0 || blockH <= 0 {
		panic(fmt.Sprintf("wfc: block size %dx%d must be positive", blockW, blockH))
	}
	if x < 0 || x >= v.wfc.width || y < 0 || y >= v.wfc.height {
		panic(fmt.Sprintf("wfc: section position (%d, %d) outside %dx%d grid", x, y, v.wfc.width, v.wfc.height))
	}
	bx := (x / blockW) * blockW
	by := (y / blockH) * blockH
	return v.Span(Range{bx, bx + blockW}, Range{by, by + blockH})
}

func (v View[T]) checkRange(axis string, r Range, limit int) {
	if r.Len() == 0 {
		panic(fmt.Sprintf("wfc: %s-range [%d, %d) is empty", axis, r.Start, r.End))
	}
	if r.Start < 0 || r.End > limit {
		panic(fmt.Sprintf("wfc: %s-range [%d, %d) outside grid extent %d", axis, r.Start, r.End, limit))
	}
}
