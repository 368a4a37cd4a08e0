// Package store provides SQLite-backed record stores for kinship-atlas.
//
// Two record families are stored:
//   - Persons: attribute records (name, optional birth/death dates)
//   - Relation edges: directed relationship records between persons
//
// The store is a collaborator of the engine, not part of it: it offers
// plain insert/select/delete operations and enforces only physical
// constraints. Logical invariants (one semantic relationship per pair,
// chronological ordering) belong to internal/engine.
//
// # Physical constraints
//
//   - UNIQUE(from_id, to_id, kind) on relation edges. Duplicate inserts
//     of the same ordered triple are benign no-ops: InsertEdge uses
//     ON CONFLICT DO NOTHING and reports whether a row was written, so
//     a double-submit race resolves without error.
//   - CHECK(from_id <> to_id) rejects self-loops at the boundary.
//   - Foreign keys to persons keep edges from dangling.
//
// # Determinism
//
// All list reads use ORDER BY created_at ASC, id ASC so that perspective
// computation sees edges in a stable order across calls. List results are
// never nil - absent data is an empty slice.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// Rows are parsed into internal/kin types at this boundary; raw column
// values never cross into the engine.
package store
