// Package engine implements the kinship-atlas relationship consistency
// engine.
//
// The engine is the single place where family relationships are
// interpreted. It owns four concerns:
//
//   - Perspective normalization: converting stored directed edges into a
//     person's bidirectional view of their relations, deduplicating
//     reciprocal duplicates (perspective.go)
//   - Temporal validation: deciding whether a proposed parent/child
//     direction is chronologically possible, and inferring the corrected
//     direction when it is not (temporal.go)
//   - Display materialization: collapsing all perspectives into one
//     undirected display edge per unordered pair (materialize.go)
//   - Writing: the single entry point for creating and removing
//     relationships, in strict or smart mode (writer.go)
//
// CRITICAL: strict and smart write modes share ONE validator. Two
// historical code paths embedded their own copies of the date comparison
// and drifted apart (one non-strict, one strict); this package exists to
// make that impossible. Strict inequality is the production rule: a
// parent must be born strictly before the child, so two people born the
// same day can never be parent and child - in either direction.
//
// The engine is synchronous pure computation over data fetched from its
// store collaborators. It holds no state between calls, takes a
// context.Context only because store reads do I/O, and never arbitrates
// concurrent writers - the store's uniqueness constraint does, and the
// writer treats the resulting conflict as a benign no-op.
package engine
