// Package solver drives a wfc engine to completion.
//
// The engine's Step contract leaves the retry loop, termination policy
// and observability to the caller; Solver owns them. It calls Step until
// the engine reports solved or stuck, enforces a max-steps quota so
// pathological rule sets cannot spin forever, stamps every step with a
// monotonic sequence number for tracing, and optionally re-verifies a
// solved grid (the engine's single-pass propagation cannot see two cells
// of one unit being forced to the same value in the same pass).
package solver
