package engine

import (
	"context"
	"fmt"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// Mode selects how the writer reacts to an invalid parent/child
// direction.
type Mode string

const (
	// ModeStrict fails the call on an invalid direction and surfaces
	// the reason and suggestion for the caller to act on.
	ModeStrict Mode = "strict"

	// ModeSmart attempts to create the edge in the inferred corrected
	// direction; when no valid correction exists the original error is
	// returned unchanged.
	ModeSmart Mode = "smart"
)

// IsValid reports whether m is a known write mode.
func (m Mode) IsValid() bool {
	return m == ModeStrict || m == ModeSmart
}

// WriteResult reports the outcome of CreateRelationship.
type WriteResult struct {
	// EdgeID identifies the stored edge - newly created, or the
	// pre-existing one when the write was a benign duplicate.
	EdgeID string `json:"edge_id"`

	// Created is false when the relationship already existed in the
	// desired form and no row was written.
	Created bool `json:"created"`

	// Corrected is true when smart mode reversed the requested
	// direction.
	Corrected bool `json:"corrected"`

	// ActualKind is the kind actually applied to the (fromID → toID)
	// direction: the requested kind, or its inverse after correction.
	// Callers should re-fetch the perspective rather than assume.
	ActualKind kin.Kind `json:"actual_kind"`
}

// CreateRelationship is the single entry point for creating a family
// relationship. It is an atomic transition from "absent" to "present"
// (possibly in corrected form); there is no draft state.
//
// Parent/child requests run through the shared temporal validator
// (temporal.go). Indeterminate verdicts - a missing birth date on
// either side - always succeed: absence of proof is not an objection.
//
// A uniqueness conflict with an edge encoding the SAME semantic
// relationship (identical triple, or reciprocal duplicate) is a benign
// no-op success. An existing edge of a DIFFERENT kind is surfaced as
// ConflictingEdgeError and never overwritten.
func (e *Engine) CreateRelationship(ctx context.Context, fromID, toID string, kind kin.Kind, mode Mode) (WriteResult, error) {
	if fromID == toID {
		return WriteResult{}, &ValidationError{
			Code:   ErrCodeSelfRelation,
			Reason: fmt.Sprintf("cannot relate %s to themselves", fromID),
		}
	}
	if !kind.IsValid() {
		return WriteResult{}, &ValidationError{
			Code:   ErrCodeUnknownKind,
			Reason: fmt.Sprintf("unknown relationship kind %q", kind),
		}
	}
	if !mode.IsValid() {
		return WriteResult{}, &ValidationError{
			Code:   ErrCodeUnknownMode,
			Reason: fmt.Sprintf("unknown write mode %q", mode),
		}
	}

	from, err := e.persons.GetPerson(ctx, fromID)
	if err != nil {
		return WriteResult{}, fmt.Errorf("create relationship: %w", err)
	}
	to, err := e.persons.GetPerson(ctx, toID)
	if err != nil {
		return WriteResult{}, fmt.Errorf("create relationship: %w", err)
	}

	actualKind := kind
	corrected := false

	if kind == kin.KindParent || kind == kin.KindChild {
		verdict := ValidateParentChild(from, to, kind == kin.KindParent)
		if verdict.Status == StatusInvalid {
			actualKind, corrected, err = e.resolveInvalid(from, to, kind, mode, verdict)
			if err != nil {
				return WriteResult{}, err
			}
		}
	}

	// Physical orientation: corrected vertical edges are stored
	// parent→child so the record reads the way the data was inferred.
	physFrom, physTo, physKind := fromID, toID, actualKind
	if corrected && actualKind == kin.KindChild {
		physFrom, physTo, physKind = toID, fromID, kin.KindParent
	}
	proposed := kin.RelationEdge{FromID: physFrom, ToID: physTo, Kind: physKind}

	// Never overwrite an existing relationship of a different kind.
	if existing, found, err := e.edges.EdgeBetween(ctx, fromID, toID); err != nil {
		return WriteResult{}, fmt.Errorf("create relationship: %w", err)
	} else if found {
		if existing.SameRelationship(proposed) {
			return WriteResult{EdgeID: existing.ID, Corrected: corrected, ActualKind: actualKind}, nil
		}
		return WriteResult{}, &ConflictingEdgeError{
			ExistingEdgeID: existing.ID,
			ExistingKind:   existing.Kind,
			RequestedKind:  kind,
		}
	}

	edge := proposed
	edge.ID = e.ids.NewEdgeID()
	edge.CreatedAt = e.now().UTC()

	inserted, err := e.edges.InsertEdge(ctx, edge)
	if err != nil {
		return WriteResult{}, fmt.Errorf("create relationship: %w", err)
	}
	if !inserted {
		// Lost a double-submit race after the pre-check. The winning
		// edge carries the same ordered triple, so this is the benign
		// duplicate case: report the existing edge.
		existing, found, err := e.edges.EdgeBetween(ctx, fromID, toID)
		if err != nil {
			return WriteResult{}, fmt.Errorf("create relationship: %w", err)
		}
		if !found {
			return WriteResult{}, fmt.Errorf("create relationship: insert conflicted but no edge found between %s and %s", fromID, toID)
		}
		if !existing.SameRelationship(proposed) {
			return WriteResult{}, &ConflictingEdgeError{
				ExistingEdgeID: existing.ID,
				ExistingKind:   existing.Kind,
				RequestedKind:  kind,
			}
		}
		return WriteResult{EdgeID: existing.ID, Corrected: corrected, ActualKind: actualKind}, nil
	}

	if corrected {
		e.log.Info("auto-corrected relationship direction",
			"from_id", fromID,
			"to_id", toID,
			"requested_kind", string(kind),
			"actual_kind", string(actualKind))
	}

	return WriteResult{EdgeID: edge.ID, Created: true, Corrected: corrected, ActualKind: actualKind}, nil
}

// resolveInvalid handles an Invalid verdict per mode. Strict mode fails
// with the verdict's reason and suggestion. Smart mode adopts the
// suggested direction - but only after the SAME validator confirms it,
// so a "correction" into an equally invalid direction (equal birth
// dates) is impossible and the original error stands.
func (e *Engine) resolveInvalid(from, to kin.Person, kind kin.Kind, mode Mode, verdict Verdict) (actualKind kin.Kind, corrected bool, err error) {
	invalid := &ValidationError{
		Code:          ErrCodeChronology,
		Reason:        verdict.Reason,
		Suggestion:    verdict.Suggestion,
		SuggestedKind: verdict.SuggestedKind,
	}

	if mode == ModeStrict || verdict.SuggestedKind == "" {
		return "", false, invalid
	}

	reversed := ValidateParentChild(from, to, verdict.SuggestedKind == kin.KindParent)
	if reversed.Status != StatusValid {
		return "", false, invalid
	}

	return verdict.SuggestedKind, true, nil
}

// RemoveRelationship deletes a relationship edge. There are no cascading
// side effects: the edge simply stops appearing in both endpoints'
// future perspectives. Removing a missing edge succeeds.
func (e *Engine) RemoveRelationship(ctx context.Context, edgeID string) error {
	if err := e.edges.DeleteEdge(ctx, edgeID); err != nil {
		return fmt.Errorf("remove relationship: %w", err)
	}
	return nil
}
