package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// PersonStore is the engine's read-only view of person records.
// Implemented by *store.Store in production.
type PersonStore interface {
	GetPerson(ctx context.Context, id string) (kin.Person, error)
}

// EdgeStore is the engine's view of relation edge records.
// Implemented by *store.Store in production.
//
// InsertEdge must treat a duplicate of the same ordered (from, to, kind)
// triple as a no-op and report inserted=false; the writer relies on this
// to resolve double-submit races without error.
type EdgeStore interface {
	InsertEdge(ctx context.Context, e kin.RelationEdge) (inserted bool, err error)
	EdgesTouching(ctx context.Context, personID string) ([]kin.RelationEdge, error)
	EdgeBetween(ctx context.Context, a, b string) (kin.RelationEdge, bool, error)
	DeleteEdge(ctx context.Context, id string) error
}

// Engine is the relationship consistency engine.
//
// All operations are synchronous: reads are idempotent pure computation
// over fetched records; CreateRelationship and RemoveRelationship are
// the only mutations. The engine holds no mutable state, so a single
// Engine value is safe for concurrent use.
type Engine struct {
	persons PersonStore
	edges   EdgeStore
	ids     IDGenerator
	log     *slog.Logger
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides the edge ID generator.
// Tests use FixedGenerator for deterministic edge IDs.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithLogger sets the logger for normalization anomaly reports.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides the wall clock used to stamp new edges.
// Tests use a fixed clock for deterministic store ordering.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over the given stores.
// Defaults: UUIDv7 edge IDs, slog default logger, wall clock.
func New(persons PersonStore, edges EdgeStore, opts ...Option) *Engine {
	e := &Engine{
		persons: persons,
		edges:   edges,
		ids:     UUIDv7Generator{},
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
