// Package sudoku instantiates the wfc engine for classic 9x9 Sudoku.
//
// The value domain is the nine digits. Legality at a position is standard
// Sudoku elimination: a digit is still possible when no definite tile in
// the same row, column or 3x3 box already holds it. Entropy is the
// candidate count, so the most constrained cell collapses first.
//
// The package also owns the puzzle text format (nine lines of nine cells,
// blanks as '.', '0' or '_'), grid rendering and solution validation. It
// is a consumer of the engine's public contract, not part of it: any
// other orderable value domain plugs into the engine the same way.
package sudoku
