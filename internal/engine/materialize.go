package engine

import (
	"context"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// BuildDisplayGraph materializes the deduplicated set of display edges
// for a population: at most one undirected edge per unordered pair.
//
// Every person's perspective is computed, and a function-scoped set of
// canonical pair keys ensures each pair is emitted exactly once - the
// first occurrence wins and the reciprocal occurrence from the other
// endpoint is skipped, not merged. The normalizer already guarantees
// both sides agree on kind, so there is nothing to reconcile here, and
// kin.NewDisplayEdge produces the identical canonical edge from either
// endpoint anyway.
//
// Pairs whose far endpoint is outside personIDs still appear: the edge
// is part of every touched person's view. Output order follows the
// given personIDs and each person's perspective order, so equal inputs
// yield byte-identical graphs.
func (e *Engine) BuildDisplayGraph(ctx context.Context, personIDs []string) ([]kin.DisplayEdge, error) {
	processed := make(map[string]bool)
	graph := []kin.DisplayEdge{}

	for _, personID := range personIDs {
		entries, err := e.Perspective(ctx, personID)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			key := kin.PairKey(personID, entry.RelatedPersonID)
			if processed[key] {
				continue
			}
			processed[key] = true
			graph = append(graph, kin.NewDisplayEdge(personID, entry))
		}
	}

	return graph, nil
}
