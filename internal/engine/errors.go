package engine

import (
	"errors"
	"fmt"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// ValidationErrorCode categorizes writer validation failures.
type ValidationErrorCode string

const (
	// ErrCodeSelfRelation indicates fromID == toID.
	ErrCodeSelfRelation ValidationErrorCode = "SELF_RELATION"

	// ErrCodeUnknownKind indicates a kind outside the closed set.
	ErrCodeUnknownKind ValidationErrorCode = "UNKNOWN_KIND"

	// ErrCodeUnknownMode indicates a write mode other than strict/smart.
	ErrCodeUnknownMode ValidationErrorCode = "UNKNOWN_MODE"

	// ErrCodeChronology indicates the proposed parent/child direction is
	// chronologically impossible.
	ErrCodeChronology ValidationErrorCode = "CHRONOLOGY_VIOLATION"
)

// ValidationError is returned when a relationship write is rejected.
//
// For chronology violations, Reason cites both people and their birth
// years and Suggestion carries the remediation text (the reversed
// direction, when one exists). Callers surface both verbatim - the text
// is a presentation concern produced here once, never re-derived.
//
// All validation errors are local to a single operation and recoverable:
// the caller can retry in smart mode or reverse the direction.
type ValidationError struct {
	Code       ValidationErrorCode
	Reason     string
	Suggestion string

	// SuggestedKind is the corrected kind for the original (from, to)
	// direction when inference produced one. Zero when no suggestion
	// exists (equal or missing birth dates).
	SuggestedKind kin.Kind
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Reason, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// ConflictingEdgeError is returned when the pair is already linked by an
// edge of a DIFFERENT kind. The engine never silently overwrites an
// existing relationship; resolving the conflict is a manual decision.
type ConflictingEdgeError struct {
	ExistingEdgeID string
	ExistingKind   kin.Kind
	RequestedKind  kin.Kind
}

// Error implements the error interface.
func (e *ConflictingEdgeError) Error() string {
	return fmt.Sprintf("CONFLICTING_EDGE: pair already linked as %q by edge %s (requested %q); remove the existing edge first",
		e.ExistingKind, e.ExistingEdgeID, e.RequestedKind)
}

// IsValidationError returns true if the error is a writer validation
// rejection. Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflictError returns true if the error is a conflicting-edge
// rejection. Uses errors.As to handle wrapped errors.
func IsConflictError(err error) bool {
	var ce *ConflictingEdgeError
	return errors.As(err, &ce)
}
