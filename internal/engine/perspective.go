package engine

import (
	"context"
	"fmt"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// Perspective computes a person's deduplicated view of their relations:
// one entry per distinct related person, each carrying the relation kind
// as seen from this person.
//
// Edges where the person is FromID ("owned" edges) are processed before
// edges where the person is ToID, each group in store order. Combined
// with the dedup rules below this makes the output deterministic.
//
// Dedup, when two entries target the same related person (a reciprocal
// duplicate the store does not prevent):
//   - if the kept entry's kind is spouse or sibling, it stays - symmetric
//     kinds never lose to anything, and first encountered wins;
//   - if the incoming entry's kind is spouse or sibling and the kept one
//     is parent/child, first encountered still wins;
//   - otherwise both are parent/child variants and the entry derived
//     from an owned edge wins over one derived from the far endpoint.
//
// Malformed edges (self-loops, unknown kinds) are logged and skipped;
// one bad record never blocks perspective computation for the rest.
func (e *Engine) Perspective(ctx context.Context, personID string) ([]kin.PerspectiveEntry, error) {
	edges, err := e.edges.EdgesTouching(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("perspective of %s: %w", personID, err)
	}

	entries := make([]kin.PerspectiveEntry, 0, len(edges))
	byRelated := make(map[string]int, len(edges))

	// Owned edges first, then inherited; both passes keep store order.
	for _, owned := range []bool{true, false} {
		for _, edge := range edges {
			if err := edge.Validate(); err != nil {
				if owned {
					// Log on the first pass only; the same record would
					// repeat on the second.
					e.log.Warn("skipping malformed relation edge",
						"edge_id", edge.ID,
						"person_id", personID,
						"error", err)
				}
				continue
			}
			if (edge.FromID == personID) != owned {
				continue
			}

			entry, ok := kin.PerspectiveOf(edge, personID)
			if !ok {
				continue
			}

			idx, seen := byRelated[entry.RelatedPersonID]
			if !seen {
				byRelated[entry.RelatedPersonID] = len(entries)
				entries = append(entries, entry)
				continue
			}

			kept := entries[idx]
			if preferIncoming(kept, entry) {
				entries[idx] = entry
			}
		}
	}

	return entries, nil
}

// preferIncoming decides whether an incoming duplicate entry replaces
// the kept one. Symmetric kinds never lose and first-encountered wins
// among them; for parent/child variants, owned beats inherited.
func preferIncoming(kept, incoming kin.PerspectiveEntry) bool {
	if kept.Kind.Symmetric() || incoming.Kind.Symmetric() {
		return false // first encountered wins
	}
	return incoming.Owned && !kept.Owned
}
