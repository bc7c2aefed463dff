package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveCommand_ForcedPuzzle(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--seed", "7", "testdata/forced.cue"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "forced-diagonal: solved in 1 steps (seed 7)")
	assert.NotContains(t, output, ".", "solved grid must have no blanks")
}

func TestSolveCommand_JSONReport(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewSolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--seed", "7", "testdata/forced.cue"})

	require.NoError(t, cmd.Execute())

	var report SolveReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "forced-diagonal", report.Puzzle)
	assert.Equal(t, "solved", report.Status)
	assert.Equal(t, 1, report.Steps)
	assert.Equal(t, int64(7), report.Seed)
	assert.NotContains(t, report.Grid, ".")
	assert.Empty(t, report.RunID, "no --db means no archived run")
}

func TestSolveCommand_ArchivesRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewSolveCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--seed", "7", "--db", dbPath, "testdata/forced.cue"})

	require.NoError(t, cmd.Execute())

	var report SolveReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.NotEmpty(t, report.RunID)

	// The archived run is visible to the runs command.
	listBuf := &bytes.Buffer{}
	runsCmd := NewRunsCommand(&RootOptions{Format: "text"})
	runsCmd.SetOut(listBuf)
	runsCmd.SetArgs([]string{"--db", dbPath})

	require.NoError(t, runsCmd.Execute())
	assert.Contains(t, listBuf.String(), report.RunID)
	assert.Contains(t, listBuf.String(), "solved")
}

func TestSolveCommand_ClassicTerminates(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewSolveCommand(rootOpts)
	cmd.SilenceUsage = true
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--seed", "3", "testdata/classic.cue"})

	err := cmd.Execute()
	if err != nil {
		// A stuck run is a legitimate outcome; it must exit 1, not 2.
		assert.Equal(t, ExitFailure, GetExitCode(err))
	}

	var report SolveReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Contains(t, []string{"solved", "stuck", "quota_exceeded"}, report.Status)
	assert.Positive(t, report.Steps)
}

func TestSolveCommand_MissingFile(t *testing.T) {
	cmd := NewSolveCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"testdata/does-not-exist.cue"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load puzzle")
}

func TestSolveCommand_ConflictingGivens(t *testing.T) {
	cmd := NewSolveCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"testdata/conflict.txt"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid puzzle")
}

func TestSolveCommand_MissingArg(t *testing.T) {
	cmd := NewSolveCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
