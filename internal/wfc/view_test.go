package wfc

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRules ignores the grid and always returns the same candidate set.
type fixedRules struct {
	states []int
}

func (r fixedRules) States(View[int]) Set[int] {
	return NewSet(r.states...)
}

// grid4x4 builds a 4x4 engine of definite tiles 0..15 in row-major order:
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
func grid4x4(t *testing.T) *Wfc[int] {
	t.Helper()
	tiles := make([]Tile[int], 0, 16)
	for i := 0; i < 16; i++ {
		tiles = append(tiles, Definite(i))
	}
	return New(4, 4, tiles, fixedRules{states: []int{0}})
}

func collectValues(t *testing.T, seq iter.Seq[Tile[int]]) []int {
	t.Helper()
	var out []int
	for tile := range seq {
		out = append(out, tile.Value())
	}
	return out
}

func TestView_Row(t *testing.T) {
	view := grid4x4(t).View(0)

	row := view.Row(0)
	assert.Equal(t, 4, row.Width())
	assert.Equal(t, 1, row.Height())
	assert.Equal(t, []int{0, 1, 2, 3}, collectValues(t, row.RowIter()))

	assert.Equal(t, []int{8, 9, 10, 11}, collectValues(t, view.Row(2).RowIter()))
}

func TestView_Col(t *testing.T) {
	view := grid4x4(t).View(0)

	col := view.Col(0)
	assert.Equal(t, 1, col.Width())
	assert.Equal(t, 4, col.Height())
	assert.Equal(t, []int{0, 4, 8, 12}, collectValues(t, col.RowIter()))

	assert.Equal(t, []int{3, 7, 11, 15}, collectValues(t, view.Col(3).RowIter()))
}

func TestView_Span_RowIter(t *testing.T) {
	view := grid4x4(t).View(0)

	span := view.Span(Range{1, 3}, Range{0, 3})
	assert.Equal(t, 2, span.Width())
	assert.Equal(t, 3, span.Height())
	assert.Equal(t, []int{1, 2, 5, 6, 9, 10}, collectValues(t, span.RowIter()))
}

func TestView_Span_ColIter(t *testing.T) {
	view := grid4x4(t).View(0)

	span := view.Span(Range{1, 3}, Range{0, 3})
	assert.Equal(t, []int{1, 5, 9, 2, 6, 10}, collectValues(t, span.ColIter()))
}

func TestView_Span_YieldsWidthTimesHeightTiles(t *testing.T) {
	view := grid4x4(t).View(0)

	span := view.Span(Range{0, 4}, Range{1, 4})
	rowOrder := collectValues(t, span.RowIter())
	require.Len(t, rowOrder, 4*3)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, rowOrder)
}

func TestView_Iterators_Restartable(t *testing.T) {
	span := grid4x4(t).View(0).Span(Range{1, 3}, Range{0, 2})

	rows := span.RowIter()
	assert.Equal(t, collectValues(t, rows), collectValues(t, rows))

	cols := span.ColIter()
	assert.Equal(t, collectValues(t, cols), collectValues(t, cols))
}

func TestView_RowSpan(t *testing.T) {
	view := grid4x4(t).View(0)

	span := view.RowSpan(0, Range{1, 3})
	assert.Equal(t, []int{1, 2}, collectValues(t, span.RowIter()))
}

func TestView_ColSpan(t *testing.T) {
	view := grid4x4(t).View(0)

	span := view.ColSpan(0, Range{1, 3})
	assert.Equal(t, []int{4, 8}, collectValues(t, span.RowIter()))
}

func TestView_SectionAt(t *testing.T) {
	view := grid4x4(t).View(0)

	// (3, 1) sits in the 2x2 block whose origin floors to (2, 0).
	block := view.SectionAt(2, 2, 3, 1)
	assert.Equal(t, []int{2, 3, 6, 7}, collectValues(t, block.RowIter()))

	// The block boundary is a tiling, not a window centered on the
	// position: (0, 3) and (1, 2) land in the same block.
	a := collectValues(t, view.SectionAt(2, 2, 0, 3).RowIter())
	b := collectValues(t, view.SectionAt(2, 2, 1, 2).RowIter())
	assert.Equal(t, []int{8, 9, 12, 13}, a)
	assert.Equal(t, a, b)
}

func TestView_At(t *testing.T) {
	view := grid4x4(t).View(0)

	assert.Equal(t, 6, view.At(2, 1).Value())
	assert.Equal(t, 0, view.Tile().Value())

	x, y := grid4x4(t).View(7).Pos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)
}

func TestView_BoundsViolationsPanic(t *testing.T) {
	view := grid4x4(t).View(0)

	require.Panics(t, func() { view.Row(4) })
	require.Panics(t, func() { view.Col(-1) })
	require.Panics(t, func() { view.At(4, 0) })
	require.Panics(t, func() { view.Span(Range{2, 2}, Range{0, 1}) }, "empty x-range")
	require.Panics(t, func() { view.Span(Range{0, 1}, Range{3, 2}) }, "empty y-range")
	require.Panics(t, func() { view.Span(Range{0, 5}, Range{0, 1}) }, "x-range past width")
	require.Panics(t, func() { view.RowSpan(0, Range{3, 6}) })
	require.Panics(t, func() { view.ColSpan(5, Range{0, 2}) })
	require.Panics(t, func() { view.SectionAt(0, 2, 1, 1) }, "zero block size")
	require.Panics(t, func() { view.SectionAt(3, 3, 3, 3) }, "block past grid edge")
}
