package sudoku

import (
	"strconv"

	"github.com/rmarches/collapse/internal/wfc"
)

// Digit is one of the nine Sudoku values.
type Digit int

const (
	One Digit = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

// Size is the edge length of a Sudoku grid.
const Size = 9

// BlockSize is the edge length of the 3x3 boxes tiling the grid.
const BlockSize = 3

// Valid reports whether d is one of the nine digits.
func (d Digit) Valid() bool {
	return d >= One && d <= Nine
}

func (d Digit) String() string {
	return strconv.Itoa(int(d))
}

// FullSet returns the candidate set holding all nine digits.
func FullSet() wfc.Set[Digit] {
	return wfc.NewSet(One, Two, Three, Four, Five, Six, Seven, Eight, Nine)
}
