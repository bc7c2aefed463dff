package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// snapshot serializes a run outcome for golden comparison. Plain text
// keeps diffs readable when a golden file changes.
func snapshot(sc *Scenario, res *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", sc.Name)
	fmt.Fprintf(&b, "status: %s\n", res.Status)
	fmt.Fprintf(&b, "steps: %d\n", res.Steps)
	fmt.Fprintf(&b, "grid:\n%s\n", res.Grid)
	return []byte(b.String())
}

// RunWithGolden executes a scenario, checks its expect clause and
// compares the outcome snapshot against testdata/golden/<name>.golden.
//
// Regenerate golden files with:
//
//	go test ./internal/harness -update
//
// Only use this for scenarios whose outcome does not depend on the seed
// beyond what the seed itself fixes; the snapshot captures the exact
// final grid.
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	res, err := Run(sc)
	if err != nil {
		return err
	}
	if err := sc.Check(res); err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, snapshot(sc, res))
	return nil
}
