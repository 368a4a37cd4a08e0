package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// newTestStore opens an in-memory store and registers cleanup.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

// seedPersons inserts bare person records for edge tests.
func seedPersons(t *testing.T, s *Store, ids ...string) {
	t.Helper()

	ctx := context.Background()
	for _, id := range ids {
		require.NoError(t, s.PutPerson(ctx, kin.Person{ID: id}))
	}
}

// testEdge builds a valid edge with a deterministic creation time.
// The seq offset keeps store ordering stable across fast inserts.
func testEdge(id, from, to string, kind kin.Kind, seq int) kin.RelationEdge {
	return kin.RelationEdge{
		ID:        id,
		FromID:    from,
		ToID:      to,
		Kind:      kind,
		CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second),
	}
}
