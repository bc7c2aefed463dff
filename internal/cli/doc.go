// Package cli implements the collapse command line interface.
//
// Commands:
//   - solve: run the WFC solver over a puzzle file
//   - validate: check a puzzle file without solving it
//   - runs: inspect solve runs archived in a SQLite database
//
// Puzzle files are CUE documents validated against an embedded schema;
// plain-text puzzles (the nine-line grid format) are accepted as well.
// All commands honor the global --format flag for text or JSON output and
// --verbose for debug logging.
package cli
