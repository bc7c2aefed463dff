package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicPuzzle = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79`

func TestParseText_Compact(t *testing.T) {
	p, err := ParseText(classicPuzzle)
	require.NoError(t, err)

	assert.Equal(t, 5, p.Cells[0])
	assert.Equal(t, 3, p.Cells[1])
	assert.Equal(t, 0, p.Cells[2])
	assert.Equal(t, 9, p.Cells[80])
	assert.Equal(t, 30, p.Givens())
}

func TestParseText_RoundTrip(t *testing.T) {
	p, err := ParseText(classicPuzzle)
	require.NoError(t, err)

	again, err := ParseText(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestParseText_AcceptsRenderedForm(t *testing.T) {
	rendered := `5 3 . | . 7 . | . . .
6 . . | 1 9 5 | . . .
. 9 8 | . . . | . 6 .
------+-------+------
8 . . | . 6 . | . . 3
4 . . | 8 . 3 | . . 1
7 . . | . 2 . | . . 6
------+-------+------
. 6 . | . . . | 2 8 .
. . . | 4 1 9 | . . 5
. . . | . 8 . | . 7 9`

	p, err := ParseText(rendered)
	require.NoError(t, err)

	compact, err := ParseText(classicPuzzle)
	require.NoError(t, err)
	assert.Equal(t, compact, p)
}

func TestParseText_BlankAliases(t *testing.T) {
	p, err := ParseText(`_23456789
4.6789123
780123456
234067891
567801234
89123a567
345678012
67891230 5
912345670`)
	assert.Error(t, err, "letter cells must be rejected")

	p, err = ParseText(`_23456789
4.6789123
780123456
234067891
567801234
891230567
345678012
678912305
912345670`)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Cells[0], "'_' is a blank")
	assert.Equal(t, 0, p.Cells[Size+1], "'.' is a blank")
	assert.Equal(t, 0, p.Cells[2*Size+2], "'0' is a blank")
}

func TestParseText_WrongShape(t *testing.T) {
	_, err := ParseText("123\n456")
	assert.Error(t, err)

	_, err = ParseText(`123456789
12345678
123456789
123456789
123456789
123456789
123456789
123456789
123456789`)
	assert.Error(t, err)
}

func TestPuzzle_Validate_DetectsConflicts(t *testing.T) {
	base, err := ParseText(classicPuzzle)
	require.NoError(t, err)
	require.NoError(t, base.Validate())

	rowDup := base
	rowDup.Cells[2] = 5 // row 0 already holds a 5
	assert.ErrorContains(t, rowDup.Validate(), "row 0")

	colDup := base
	colDup.Cells[2*Size] = 5 // column 0 already holds a 5
	assert.ErrorContains(t, colDup.Validate(), "column 0")

	boxDup := base
	boxDup.Cells[1*Size+1] = 5 // top-left box already holds a 5
	assert.ErrorContains(t, boxDup.Validate(), "box 0")

	garbage := base
	garbage.Cells[4] = 12
	assert.ErrorContains(t, garbage.Validate(), "invalid value")
}
