package kin

import (
	"fmt"
	"time"
)

// Person is the engine-visible subset of a person record. The engine
// reads ID, BirthDate, and DeathDate; Name is carried only so that
// validation errors can cite people readably.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	BirthDate Date   `json:"birth_date,omitempty"`
	DeathDate Date   `json:"death_date,omitempty"`
}

// DisplayName returns the person's name, falling back to the ID.
func (p Person) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// RelationEdge is a single directed relationship record.
// Kind = parent means "FromID is the parent of ToID"; see Kind.
//
// The store enforces at most one edge per (FromID, ToID, Kind) ordered
// triple. It does NOT prevent a reciprocal duplicate - (b, a, child)
// alongside (a, b, parent) - so logical dedup is the normalizer's job,
// not a storage guarantee.
type RelationEdge struct {
	ID        string    `json:"id"`
	FromID    string    `json:"from_id"`
	ToID      string    `json:"to_id"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks structural invariants of an edge record.
// Self-loops and unknown kinds are the anomalies the normalizer must
// drop; Validate is how they are detected.
func (e RelationEdge) Validate() error {
	if e.FromID == "" {
		return fmt.Errorf("edge %s: from_id is required", e.ID)
	}
	if e.ToID == "" {
		return fmt.Errorf("edge %s: to_id is required", e.ID)
	}
	if e.FromID == e.ToID {
		return fmt.Errorf("edge %s: self-loop on %s", e.ID, e.FromID)
	}
	if !e.Kind.IsValid() {
		return fmt.Errorf("edge %s: unknown kind %q", e.ID, e.Kind)
	}
	return nil
}

// Touches reports whether personID is either endpoint of the edge.
func (e RelationEdge) Touches(personID string) bool {
	return e.FromID == personID || e.ToID == personID
}

// SameRelationship reports whether two edges encode the same semantic
// relationship: the identical ordered triple, or the endpoints swapped
// with the inverse kind.
func (e RelationEdge) SameRelationship(o RelationEdge) bool {
	if e.FromID == o.FromID && e.ToID == o.ToID && e.Kind == o.Kind {
		return true
	}
	return e.FromID == o.ToID && e.ToID == o.FromID && e.Kind == o.Kind.Inverse()
}

// PerspectiveEntry is one person's view of a single relation: "the
// related person is my <Kind>". Derived fresh on every read, never
// persisted.
//
// Owned records which endpoint the entry was derived from: true when
// the viewing person is the edge's FromID. The normalizer's dedup rules
// use it to break ties between reciprocal duplicates.
type PerspectiveEntry struct {
	EdgeID          string `json:"edge_id"`
	RelatedPersonID string `json:"related_person_id"`
	Kind            Kind   `json:"kind"`
	Owned           bool   `json:"-"`
}

// PerspectiveOf derives the viewing person's entry for an edge.
// Returns ok=false when the person is not an endpoint.
//
// From the FromID side the stored kind describes the viewer, so the
// related person is the inverse; from the ToID side the stored kind
// already describes the related person. Both paths go through the one
// inversion table.
func PerspectiveOf(e RelationEdge, personID string) (PerspectiveEntry, bool) {
	switch personID {
	case e.FromID:
		return PerspectiveEntry{
			EdgeID:          e.ID,
			RelatedPersonID: e.ToID,
			Kind:            e.Kind.Inverse(),
			Owned:           true,
		}, true
	case e.ToID:
		return PerspectiveEntry{
			EdgeID:          e.ID,
			RelatedPersonID: e.FromID,
			Kind:            e.Kind,
			Owned:           false,
		}, true
	default:
		return PerspectiveEntry{}, false
	}
}
