package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
	"github.com/nordmindi/kinship-atlas-sub002/internal/store"
)

func TestPerspectiveInvertsVerticalKinds(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	putPerson(t, s, "p-marge", "Margaret", "1950-06-15")
	putPerson(t, s, "p-tom", "Thomas", "1980-03-02")

	// Stored: Margaret is the parent of Thomas.
	inserted, err := s.InsertEdge(ctx, testEdge("e-1", "p-marge", "p-tom", kin.KindParent, 0))
	require.NoError(t, err)
	require.True(t, inserted)

	margeView, err := e.Perspective(ctx, "p-marge")
	require.NoError(t, err)
	require.Len(t, margeView, 1)
	assert.Equal(t, "p-tom", margeView[0].RelatedPersonID)
	assert.Equal(t, kin.KindChild, margeView[0].Kind)
	assert.Equal(t, "e-1", margeView[0].EdgeID)

	tomView, err := e.Perspective(ctx, "p-tom")
	require.NoError(t, err)
	require.Len(t, tomView, 1)
	assert.Equal(t, "p-marge", tomView[0].RelatedPersonID)
	assert.Equal(t, kin.KindParent, tomView[0].Kind)
	assert.Equal(t, "e-1", tomView[0].EdgeID)
}

func TestPerspectiveSymmetricKinds(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	putPerson(t, s, "p-a", "Ana", "")
	putPerson(t, s, "p-b", "Bo", "")

	_, err := s.InsertEdge(ctx, testEdge("e-1", "p-a", "p-b", kin.KindSpouse, 0))
	require.NoError(t, err)

	// Both endpoints read the identical kind.
	for _, id := range []string{"p-a", "p-b"} {
		view, err := e.Perspective(ctx, id)
		require.NoError(t, err)
		require.Len(t, view, 1)
		assert.Equal(t, kin.KindSpouse, view[0].Kind)
	}
}

func TestPerspectiveDedupsReciprocalDuplicates(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	putPerson(t, s, "p-marge", "Margaret", "1950-06-15")
	putPerson(t, s, "p-tom", "Thomas", "1980-03-02")

	// The same relationship recorded from both ends - the store's
	// ordered-triple uniqueness does not prevent this.
	_, err := s.InsertEdge(ctx, testEdge("e-1", "p-marge", "p-tom", kin.KindParent, 0))
	require.NoError(t, err)
	_, err = s.InsertEdge(ctx, testEdge("e-2", "p-tom", "p-marge", kin.KindChild, 1))
	require.NoError(t, err)

	// Each perspective collapses to one entry, derived from the owned
	// edge, and both still agree on the semantics.
	margeView, err := e.Perspective(ctx, "p-marge")
	require.NoError(t, err)
	require.Len(t, margeView, 1)
	assert.Equal(t, kin.KindChild, margeView[0].Kind)
	assert.Equal(t, "e-1", margeView[0].EdgeID)

	tomView, err := e.Perspective(ctx, "p-tom")
	require.NoError(t, err)
	require.Len(t, tomView, 1)
	assert.Equal(t, kin.KindParent, tomView[0].Kind)
	assert.Equal(t, "e-2", tomView[0].EdgeID)
}

func TestPerspectiveSymmetricNeverLoses(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	putPerson(t, s, "p-a", "Ana", "")
	putPerson(t, s, "p-b", "Bo", "")

	// Conflicting records for the same pair: a spouse edge and a later
	// parent edge from the far end. The symmetric entry wins regardless
	// of encounter order or ownership.
	_, err := s.InsertEdge(ctx, testEdge("e-spouse", "p-a", "p-b", kin.KindSpouse, 0))
	require.NoError(t, err)
	_, err = s.InsertEdge(ctx, testEdge("e-parent", "p-b", "p-a", kin.KindParent, 1))
	require.NoError(t, err)

	view, err := e.Perspective(ctx, "p-a")
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, kin.KindSpouse, view[0].Kind)
	assert.Equal(t, "e-spouse", view[0].EdgeID)
}

func TestPerspectiveUnknownPersonIsEmpty(t *testing.T) {
	e, _ := newTestEngine(t)

	view, err := e.Perspective(context.Background(), "p-nobody")
	require.NoError(t, err)
	assert.NotNil(t, view)
	assert.Empty(t, view)
}

func TestPerspectiveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	e, s := newTestEngine(t)
	putPerson(t, s, "p-a", "Ana", "1950-06-15")
	putPerson(t, s, "p-b", "Bo", "1980-03-02")
	putPerson(t, s, "p-c", "Cal", "1982-01-20")

	_, err := s.InsertEdge(ctx, testEdge("e-1", "p-a", "p-b", kin.KindParent, 0))
	require.NoError(t, err)
	_, err = s.InsertEdge(ctx, testEdge("e-2", "p-b", "p-c", kin.KindSibling, 1))
	require.NoError(t, err)

	first, err := e.Perspective(ctx, "p-b")
	require.NoError(t, err)
	second, err := e.Perspective(ctx, "p-b")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// rawEdgeStore serves edges verbatim, bypassing the store's insert-time
// validation, so normalization of malformed records can be exercised.
type rawEdgeStore struct {
	edges []kin.RelationEdge
}

func (r *rawEdgeStore) InsertEdge(_ context.Context, e kin.RelationEdge) (bool, error) {
	r.edges = append(r.edges, e)
	return true, nil
}

func (r *rawEdgeStore) EdgesTouching(_ context.Context, personID string) ([]kin.RelationEdge, error) {
	out := []kin.RelationEdge{}
	for _, e := range r.edges {
		if e.Touches(personID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *rawEdgeStore) EdgeBetween(_ context.Context, a, b string) (kin.RelationEdge, bool, error) {
	for _, e := range r.edges {
		if (e.FromID == a && e.ToID == b) || (e.FromID == b && e.ToID == a) {
			return e, true, nil
		}
	}
	return kin.RelationEdge{}, false, nil
}

func (r *rawEdgeStore) DeleteEdge(_ context.Context, id string) error {
	for i, e := range r.edges {
		if e.ID == id {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestPerspectiveSkipsMalformedEdges(t *testing.T) {
	ctx := context.Background()

	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	putPerson(t, s, "p-a", "Ana", "")
	putPerson(t, s, "p-b", "Bo", "")
	putPerson(t, s, "p-c", "Cal", "")

	raw := &rawEdgeStore{edges: []kin.RelationEdge{
		testEdge("e-self", "p-a", "p-a", kin.KindSibling, 0),
		testEdge("e-mystery", "p-a", "p-b", kin.Kind("godparent"), 1),
		testEdge("e-good", "p-a", "p-c", kin.KindSpouse, 2),
	}}
	e := New(s, raw, WithLogger(discardLogger()))

	// The two anomalies are dropped; the healthy edge still surfaces.
	view, err := e.Perspective(ctx, "p-a")
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "e-good", view[0].EdgeID)
	assert.Equal(t, kin.KindSpouse, view[0].Kind)
}

// testEdge builds an edge with a deterministic creation time; seq keeps
// store ordering stable.
func testEdge(id, from, to string, kind kin.Kind, seq int) kin.RelationEdge {
	e := kin.RelationEdge{ID: id, FromID: from, ToID: to, Kind: kind}
	e.CreatedAt = baseEdgeTime(seq)
	return e
}
