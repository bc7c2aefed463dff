// Package store archives completed solve runs in SQLite.
//
// The wfc engine itself persists nothing; the CLI records a finished
// run's puzzle, seed, outcome and per-step trace here so runs can be
// inspected after the fact. SQLite runs in WAL mode with a single-writer
// connection pool; one run insert plus its step inserts share a
// transaction so a run is either fully archived or absent.
package store
