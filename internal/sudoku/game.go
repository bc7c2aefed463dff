package sudoku

import (
	"fmt"
	"strings"

	"github.com/rmarches/collapse/internal/wfc"
)

// NewGame builds a wfc engine for the puzzle. Givens become definite
// tiles; blanks become indefinite tiles whose initial candidate sets are
// already eliminated against the givens, so the first collapse never
// commits a digit that conflicts with the puzzle.
//
// Returns an error when the puzzle's givens conflict or leave some blank
// cell with no legal digit at all.
func NewGame(p Puzzle, opts ...wfc.Option[Digit]) (*wfc.Wfc[Digit], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tiles := make([]wfc.Tile[Digit], Size*Size)
	for i, c := range p.Cells {
		if c != 0 {
			tiles[i] = wfc.Definite(Digit(c))
		}
	}
	for i, c := range p.Cells {
		if c != 0 {
			continue
		}
		x, y := i%Size, i/Size
		candidates := initialCandidates(p, x, y)
		if candidates.IsEmpty() {
			return nil, fmt.Errorf("sudoku: no legal digit for cell (%d, %d)", x, y)
		}
		tiles[i] = wfc.Indefinite(candidates)
	}

	return wfc.New(Size, Size, tiles, Rules{}, opts...), nil
}

// initialCandidates eliminates the givens visible from (x, y) the same
// way Rules.States does once the engine is running.
func initialCandidates(p Puzzle, x, y int) wfc.Set[Digit] {
	var seen [Size + 1]bool
	for i := 0; i < Size; i++ {
		seen[p.Cells[y*Size+i]] = true
		seen[p.Cells[i*Size+x]] = true
	}
	bx, by := (x/BlockSize)*BlockSize, (y/BlockSize)*BlockSize
	for dy := 0; dy < BlockSize; dy++ {
		for dx := 0; dx < BlockSize; dx++ {
			seen[p.Cells[(by+dy)*Size+bx+dx]] = true
		}
	}

	legal := make([]Digit, 0, Size)
	for d := One; d <= Nine; d++ {
		if !seen[d] {
			legal = append(legal, d)
		}
	}
	return wfc.NewSet(legal...)
}

// Render draws the grid with 3x3 box rules. Definite tiles show their
// digit, indefinite tiles show '.'.
func Render(w *wfc.Wfc[Digit]) string {
	var b strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 && y%BlockSize == 0 {
			b.WriteString("------+-------+------\n")
		}
		for x := 0; x < Size; x++ {
			if x > 0 {
				if x%BlockSize == 0 {
					b.WriteString(" | ")
				} else {
					b.WriteByte(' ')
				}
			}
			tile := w.At(x, y)
			if tile.IsDefinite() {
				b.WriteString(tile.Value().String())
			} else {
				b.WriteByte('.')
			}
		}
		if y < Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Snapshot converts the engine grid back into a Puzzle, with indefinite
// tiles as blanks.
func Snapshot(w *wfc.Wfc[Digit]) Puzzle {
	var p Puzzle
	for i := 0; i < Size*Size; i++ {
		if tile := w.AtIndex(i); tile.IsDefinite() {
			p.Cells[i] = int(tile.Value())
		}
	}
	return p
}

// Check validates the definite tiles of a grid against row, column and
// box uniqueness. Indefinite tiles are ignored, so it applies to partial
// grids as well as finished ones.
func Check(w *wfc.Wfc[Digit]) error {
	return Snapshot(w).Validate()
}

// IsSolved reports whether every tile is definite and the grid satisfies
// all Sudoku constraints.
func IsSolved(w *wfc.Wfc[Digit]) bool {
	return w.Remaining() == 0 && Check(w) == nil
}
