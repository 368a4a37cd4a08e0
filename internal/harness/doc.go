// Package harness executes declarative conformance scenarios against
// the relationship engine.
//
// A scenario is a YAML file describing a population, a sequence of
// relationship writes with expected outcomes, and optionally raw edge
// records injected beneath the writer (to reproduce reciprocal
// duplicates and legacy anomalies the writer itself would refuse to
// create). Running a scenario produces a deterministic snapshot of
// every person's perspective plus the materialized display graph,
// which is compared against a golden file.
//
// Determinism comes from three fixtures: an in-memory store, a
// sequential edge ID generator, and a stepping clock. Equal scenarios
// always produce byte-identical snapshots.
package harness
