package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

func TestInsertEdge_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b")

	edge := testEdge("e1", "a", "b", kin.KindParent, 0)
	inserted, err := s.InsertEdge(ctx, edge)
	require.NoError(t, err)
	assert.True(t, inserted)

	got, err := s.GetEdge(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, edge, got)
}

func TestInsertEdge_DuplicateTripleIsNoOp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b")

	inserted, err := s.InsertEdge(ctx, testEdge("e1", "a", "b", kin.KindParent, 0))
	require.NoError(t, err)
	require.True(t, inserted)

	// Same ordered triple under a new ID: double-submit race.
	inserted, err = s.InsertEdge(ctx, testEdge("e2", "a", "b", kin.KindParent, 1))
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate triple must be a benign no-op")

	// The original row survives; the duplicate ID was never written.
	_, err = s.GetEdge(ctx, "e1")
	assert.NoError(t, err)
	_, err = s.GetEdge(ctx, "e2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInsertEdge_ReciprocalDuplicateIsRepresentable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b")

	// The UNIQUE constraint covers ordered triples only: the store does
	// NOT prevent a reciprocal duplicate. Healing it is the
	// normalizer's job.
	inserted, err := s.InsertEdge(ctx, testEdge("e1", "a", "b", kin.KindParent, 0))
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = s.InsertEdge(ctx, testEdge("e2", "b", "a", kin.KindChild, 1))
	require.NoError(t, err)
	assert.True(t, inserted)

	edges, err := s.EdgesTouching(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestInsertEdge_RejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a")

	_, err := s.InsertEdge(ctx, testEdge("e1", "a", "a", kin.KindSpouse, 0))
	assert.Error(t, err, "self-loop must be rejected")

	_, err = s.InsertEdge(ctx, testEdge("e2", "a", "b", "cousin", 0))
	assert.Error(t, err, "unknown kind must be rejected")
}

func TestInsertEdge_RequiresPersons(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a")

	_, err := s.InsertEdge(ctx, testEdge("e1", "a", "ghost", kin.KindParent, 0))
	assert.Error(t, err, "foreign key must reject edges to missing persons")
}

func TestEdgesTouching_DeterministicOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b", "c", "d")

	// Insert out of creation order to prove ORDER BY, not insert order.
	for _, e := range []kin.RelationEdge{
		testEdge("e3", "a", "d", kin.KindSibling, 3),
		testEdge("e1", "a", "b", kin.KindParent, 1),
		testEdge("e2", "c", "a", kin.KindSpouse, 2),
	} {
		_, err := s.InsertEdge(ctx, e)
		require.NoError(t, err)
	}

	edges, err := s.EdgesTouching(ctx, "a")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e3", edges[2].ID)
}

func TestEdgesTouching_Empty(t *testing.T) {
	s := newTestStore(t)
	seedPersons(t, s, "loner")

	edges, err := s.EdgesTouching(context.Background(), "loner")
	require.NoError(t, err)
	assert.NotNil(t, edges)
	assert.Empty(t, edges)
}

func TestEdgeBetween(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b", "c")

	_, err := s.InsertEdge(ctx, testEdge("e1", "a", "b", kin.KindParent, 0))
	require.NoError(t, err)

	// Found regardless of argument order.
	edge, found, err := s.EdgeBetween(ctx, "a", "b")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "e1", edge.ID)

	edge, found, err = s.EdgeBetween(ctx, "b", "a")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "e1", edge.ID)

	_, found, err = s.EdgeBetween(ctx, "a", "c")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEdgeBetween_OldestWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b")

	_, err := s.InsertEdge(ctx, testEdge("e1", "a", "b", kin.KindParent, 0))
	require.NoError(t, err)
	_, err = s.InsertEdge(ctx, testEdge("e2", "b", "a", kin.KindChild, 1))
	require.NoError(t, err)

	edge, found, err := s.EdgeBetween(ctx, "a", "b")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "e1", edge.ID, "the oldest edge represents the pair")
}

func TestDeleteEdge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b")

	_, err := s.InsertEdge(ctx, testEdge("e1", "a", "b", kin.KindSpouse, 0))
	require.NoError(t, err)

	require.NoError(t, s.DeleteEdge(ctx, "e1"))

	_, err = s.GetEdge(ctx, "e1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removal is idempotent.
	assert.NoError(t, s.DeleteEdge(ctx, "e1"))
}

func TestEdgesTouching_PassesThroughUnknownKinds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedPersons(t, s, "a", "b")

	// Simulate a record written by an older or foreign binary: bypass
	// InsertEdge validation.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO relation_edges (id, from_id, to_id, kind, created_at)
		VALUES ('e1', 'a', 'b', 'godparent', '2024-01-01T00:00:00Z')
	`)
	require.NoError(t, err)

	edges, err := s.EdgesTouching(ctx, "a")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, kin.Kind("godparent"), edges[0].Kind, "reads must not drop anomalies")
}
