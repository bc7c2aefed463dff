package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/rmarches/collapse/internal/sudoku"
)

// puzzleSchema constrains puzzle CUE documents. The grid string carries
// the nine-line puzzle text; name and description are presentation only.
const puzzleSchema = `
#Puzzle: {
	name?:        string
	description?: string
	grid:         string
}

puzzle: #Puzzle
`

// PuzzleDoc is a decoded puzzle file.
type PuzzleDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Grid        string `json:"grid"`
}

// LoadPuzzleFile reads a puzzle from path. Files ending in .cue are
// validated against the puzzle schema; anything else is treated as the
// plain nine-line text format.
func LoadPuzzleFile(path string) (PuzzleDoc, sudoku.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PuzzleDoc{}, sudoku.Puzzle{}, fmt.Errorf("read puzzle file: %w", err)
	}

	var doc PuzzleDoc
	if strings.EqualFold(filepath.Ext(path), ".cue") {
		doc, err = decodePuzzleCUE(path, string(data))
		if err != nil {
			return PuzzleDoc{}, sudoku.Puzzle{}, err
		}
	} else {
		doc = PuzzleDoc{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), Grid: string(data)}
	}

	puzzle, err := sudoku.ParseText(doc.Grid)
	if err != nil {
		return PuzzleDoc{}, sudoku.Puzzle{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, puzzle, nil
}

func decodePuzzleCUE(path, source string) (PuzzleDoc, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(puzzleSchema, cue.Filename("puzzle_schema.cue"))
	if err := schema.Err(); err != nil {
		return PuzzleDoc{}, fmt.Errorf("internal puzzle schema: %w", err)
	}

	val := ctx.CompileString(source, cue.Filename(path))
	if err := val.Err(); err != nil {
		return PuzzleDoc{}, fmt.Errorf("parse %s: %w", path, err)
	}

	unified := schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return PuzzleDoc{}, fmt.Errorf("validate %s: %w", path, err)
	}

	puzzleVal := unified.LookupPath(cue.ParsePath("puzzle"))
	if !puzzleVal.Exists() {
		return PuzzleDoc{}, fmt.Errorf("%s: missing top-level \"puzzle\" field", path)
	}

	var doc PuzzleDoc
	if err := puzzleVal.Decode(&doc); err != nil {
		return PuzzleDoc{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
