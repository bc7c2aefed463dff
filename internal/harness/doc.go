// Package harness runs YAML-defined solve scenarios for conformance
// testing.
//
// A scenario names a puzzle grid, a seed and an expected outcome. The
// harness builds the engine, drives it through the solver and checks the
// result against the scenario's expect clause. Golden-file helpers
// snapshot the full outcome (status, steps, final grid) for scenarios
// whose result is independent of the random source.
//
// ARCHITECTURE: scenarios are the executable form of the solver's
// contract. Anything a scenario asserts is behavior a release must
// preserve; changing a golden file is an API change.
package harness
