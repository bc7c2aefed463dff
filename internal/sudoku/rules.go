package sudoku

import "github.com/rmarches/collapse/internal/wfc"

// Rules implements wfc.Rules for the Sudoku digit domain.
//
// Stateless and pure: legality is derived entirely from the definite
// tiles visible through the view.
type Rules struct{}

// States returns the digits still legal at the view's position: all nine
// minus every digit already committed in the same row, column or 3x3 box.
func (Rules) States(view wfc.View[Digit]) wfc.Set[Digit] {
	x, y := view.Pos()

	var seen [Size + 1]bool
	mark := func(span wfc.Span[Digit]) {
		for tile := range span.RowIter() {
			if tile.IsDefinite() {
				seen[tile.Value()] = true
			}
		}
	}
	mark(view.Row(y))
	mark(view.Col(x))
	mark(view.SectionAt(BlockSize, BlockSize, x, y))

	legal := make([]Digit, 0, Size)
	for d := One; d <= Nine; d++ {
		if !seen[d] {
			legal = append(legal, d)
		}
	}
	return wfc.NewSet(legal...)
}

// Entropy scores an indefinite tile by its candidate count, so cells with
// fewer remaining possibilities collapse first (minimum remaining values).
func (Rules) Entropy(tile wfc.Tile[Digit]) float64 {
	return float64(tile.States().Len())
}
