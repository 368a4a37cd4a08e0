package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// InsertEdge inserts a relation edge record.
// Uses ON CONFLICT(from_id, to_id, kind) DO NOTHING so a duplicate of
// the same ordered triple (e.g. a double-submit race) is a benign no-op:
// inserted reports whether a row was actually written. Other constraint
// violations (self-loop CHECK, missing person FK) still return errors.
func (s *Store) InsertEdge(ctx context.Context, e kin.RelationEdge) (inserted bool, err error) {
	if err := e.Validate(); err != nil {
		return false, fmt.Errorf("insert edge: %w", err)
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO relation_edges (id, from_id, to_id, kind, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(from_id, to_id, kind) DO NOTHING
	`,
		e.ID,
		e.FromID,
		e.ToID,
		string(e.Kind),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert edge: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert edge: rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetEdge retrieves a relation edge by ID.
// Returns ErrNotFound if no such record exists.
func (s *Store) GetEdge(ctx context.Context, id string) (kin.RelationEdge, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, from_id, to_id, kind, created_at
		FROM relation_edges
		WHERE id = ?
	`, id)

	e, err := scanEdgeRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return kin.RelationEdge{}, fmt.Errorf("edge %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return kin.RelationEdge{}, fmt.Errorf("get edge %s: %w", id, err)
	}

	return e, nil
}

// EdgesTouching returns all edges where personID is either endpoint,
// in deterministic store order (created_at ASC, id ASC). The perspective
// dedup rule "first encountered wins" leans on this ordering.
//
// Edges are returned as stored - including records with kinds this
// binary no longer recognizes. Dropping anomalies is the normalizer's
// responsibility, so that one bad record never blocks a read here.
func (s *Store) EdgesTouching(ctx context.Context, personID string) ([]kin.RelationEdge, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, from_id, to_id, kind, created_at
		FROM relation_edges
		WHERE from_id = ? OR to_id = ?
		ORDER BY created_at ASC, id ASC
	`, personID, personID)
	if err != nil {
		return nil, fmt.Errorf("query edges touching %s: %w", personID, err)
	}
	defer rows.Close()

	var edges []kin.RelationEdge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edges: %w", err)
	}

	if edges == nil {
		edges = []kin.RelationEdge{}
	}

	return edges, nil
}

// EdgeBetween returns the oldest edge linking the unordered pair {a, b},
// in either orientation, and whether one exists. The writer uses it to
// distinguish a benign duplicate from a conflicting-kind edge before
// inserting.
func (s *Store) EdgeBetween(ctx context.Context, a, b string) (kin.RelationEdge, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, from_id, to_id, kind, created_at
		FROM relation_edges
		WHERE (from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`, a, b, b, a)

	e, err := scanEdgeRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return kin.RelationEdge{}, false, nil
	}
	if err != nil {
		return kin.RelationEdge{}, false, fmt.Errorf("edge between %s and %s: %w", a, b, err)
	}

	return e, true, nil
}

// DeleteEdge deletes a relation edge by ID.
// Deleting a missing edge is a no-op - removal is idempotent.
func (s *Store) DeleteEdge(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM relation_edges WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete edge %s: %w", id, err)
	}
	return nil
}

// scanEdge scans a rows cursor into a RelationEdge.
func scanEdge(rows *sql.Rows) (kin.RelationEdge, error) {
	var e kin.RelationEdge
	var kind, createdAt string

	if err := rows.Scan(&e.ID, &e.FromID, &e.ToID, &kind, &createdAt); err != nil {
		return kin.RelationEdge{}, fmt.Errorf("scan edge: %w", err)
	}

	e.Kind = kin.Kind(kind)
	e.CreatedAt = parseEdgeTime(createdAt)
	return e, nil
}

// scanEdgeRow scans a single row into a RelationEdge.
func scanEdgeRow(row *sql.Row) (kin.RelationEdge, error) {
	var e kin.RelationEdge
	var kind, createdAt string

	if err := row.Scan(&e.ID, &e.FromID, &e.ToID, &kind, &createdAt); err != nil {
		return kin.RelationEdge{}, err
	}

	e.Kind = kin.Kind(kind)
	e.CreatedAt = parseEdgeTime(createdAt)
	return e, nil
}

// parseEdgeTime parses a stored timestamp, tolerating garbage: an
// unreadable created_at degrades ordering, it must not block reads.
func parseEdgeTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
