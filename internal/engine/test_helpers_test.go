package engine

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
	"github.com/nordmindi/kinship-atlas-sub002/internal/store"
	"github.com/nordmindi/kinship-atlas-sub002/internal/testutil"
)

// newTestEngine wires an Engine over an in-memory store with a fixed
// edge ID sequence and a stepping clock, so edge IDs and store ordering
// are fully deterministic.
func newTestEngine(t *testing.T, edgeIDs ...string) (*Engine, *store.Store) {
	t.Helper()

	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	e := New(s, s,
		WithIDGenerator(NewFixedGenerator(edgeIDs...)),
		WithClock(testutil.NewDefaultStepClock().Now),
		WithLogger(discardLogger()),
	)
	return e, s
}

// discardLogger silences normalization warnings in tests that trigger
// them on purpose.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// baseEdgeTime returns a deterministic creation time offset by seq
// seconds, matching the stepping clock's era.
func baseEdgeTime(seq int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second)
}

// putPerson inserts a person with an optional YYYY-MM-DD birth date.
func putPerson(t *testing.T, s *store.Store, id, name, birth string) {
	t.Helper()

	birthDate, err := kin.ParseDate(birth)
	require.NoError(t, err)

	require.NoError(t, s.PutPerson(context.Background(), kin.Person{
		ID:        id,
		Name:      name,
		BirthDate: birthDate,
	}))
}

// mustCreate creates a relationship and fails the test on any error.
func mustCreate(t *testing.T, e *Engine, fromID, toID string, kind kin.Kind, mode Mode) WriteResult {
	t.Helper()

	res, err := e.CreateRelationship(context.Background(), fromID, toID, kind, mode)
	require.NoError(t, err)
	return res
}
