package engine

import (
	"sync"

	"github.com/google/uuid"
)

// IDGenerator generates unique relation edge IDs.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type IDGenerator interface {
	NewEdgeID() string
}

// UUIDv7Generator generates time-sortable UUIDv7 edge IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, so edge IDs
// sort by creation time - helpful when eyeballing store dumps.
//
// Thread-safety: stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// NewEdgeID creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) NewEdgeID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined edge IDs for testing.
// Enables deterministic assertions and golden snapshot comparison.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns IDs in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// NewEdgeID returns the next predetermined ID.
//
// Panics when all IDs are consumed - fail-fast for test
// misconfiguration (the test created more edges than expected).
func (g *FixedGenerator) NewEdgeID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all edge IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
