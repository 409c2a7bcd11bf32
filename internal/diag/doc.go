// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity (Info/Warning/Error), a compact
// numeric Code with a stable string form, a human-oriented Message, the
// primary source.Span, optional Notes pointing at related locations ("value
// moved here"), and optional Fix suggestions.
//
// Phases emit through a Reporter to stay decoupled from storage; BagReporter
// aggregates into a Bag, which supports sorting and merging for deterministic
// output. Package diag performs no formatting or IO — rendering lives in
// internal/diagfmt and orchestration in internal/driver.
//
// All user-level violations are recorded, never raised: a phase appends to the
// bag and keeps going, so one run surfaces as many independent problems as
// possible. Hard failures (IO, internal invariants) travel as Go errors
// outside this package.
package diag
