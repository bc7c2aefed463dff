package sudoku

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Puzzle is a 9x9 Sudoku in row-major order. Cells hold 1..9 for givens
// and 0 for blanks.
type Puzzle struct {
	Cells [Size * Size]int
}

// ParseText parses the puzzle text format: nine lines of nine cells,
// givens as digits, blanks as '.', '0' or '_'. Spaces and '|' column
// rules are ignored, as are blank lines and lines consisting only of
// box separators, so both the compact and the rendered form round-trip.
//
// Input is NFC-normalized first so composed and decomposed encodings of
// the same text parse identically.
func ParseText(input string) (Puzzle, error) {
	var p Puzzle

	rows := make([]string, 0, Size)
	for _, line := range strings.Split(norm.NFC.String(input), "\n") {
		cleaned := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\r', '|':
				return -1
			}
			return r
		}, line)
		if cleaned == "" || strings.Trim(cleaned, "-+") == "" {
			continue
		}
		rows = append(rows, cleaned)
	}
	if len(rows) != Size {
		return Puzzle{}, fmt.Errorf("sudoku: got %d puzzle rows, want %d", len(rows), Size)
	}

	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			return Puzzle{}, fmt.Errorf("sudoku: row %d has %d cells, want %d", y, len(cells), Size)
		}
		for x, r := range cells {
			switch {
			case r >= '1' && r <= '9':
				p.Cells[y*Size+x] = int(r - '0')
			case r == '.' || r == '0' || r == '_':
				p.Cells[y*Size+x] = 0
			default:
				return Puzzle{}, fmt.Errorf("sudoku: row %d column %d: invalid cell %q", y, x, r)
			}
		}
	}
	return p, nil
}

// Givens returns the number of pre-filled cells.
func (p Puzzle) Givens() int {
	n := 0
	for _, c := range p.Cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// String renders the puzzle in the compact text format ParseText accepts:
// nine lines of nine characters, blanks as '.'.
func (p Puzzle) String() string {
	var b strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := p.Cells[y*Size+x]
			if c == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + c))
			}
		}
		if y < Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Validate checks that every given is a digit and that no two givens
// conflict within a row, column or box. It does not check solvability.
func (p Puzzle) Validate() error {
	for i, c := range p.Cells {
		if c != 0 && !Digit(c).Valid() {
			return fmt.Errorf("sudoku: cell %d holds invalid value %d", i, c)
		}
	}

	unit := func(kind string, unitIdx int, cells [Size]int) error {
		var seen [Size + 1]int
		for _, c := range cells {
			if c == 0 {
				continue
			}
			seen[c]++
			if seen[c] > 1 {
				return fmt.Errorf("sudoku: digit %d given twice in %s %d", c, kind, unitIdx)
			}
		}
		return nil
	}

	for i := 0; i < Size; i++ {
		var row, col, box [Size]int
		for j := 0; j < Size; j++ {
			row[j] = p.Cells[i*Size+j]
			col[j] = p.Cells[j*Size+i]
			bx := (i%BlockSize)*BlockSize + j%BlockSize
			by := (i/BlockSize)*BlockSize + j/BlockSize
			box[j] = p.Cells[by*Size+bx]
		}
		if err := unit("row", i, row); err != nil {
			return err
		}
		if err := unit("column", i, col); err != nil {
			return err
		}
		if err := unit("box", i, box); err != nil {
			return err
		}
	}
	return nil
}
