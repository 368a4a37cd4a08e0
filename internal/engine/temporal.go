package engine

import (
	"fmt"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// VerdictStatus is the outcome of a temporal validation.
type VerdictStatus string

const (
	// StatusValid - the proposed direction is chronologically legal.
	StatusValid VerdictStatus = "valid"

	// StatusInvalid - the proposed direction violates birth-date order.
	StatusInvalid VerdictStatus = "invalid"

	// StatusIndeterminate - a birth date is missing; validation is
	// skipped and the edge may be created without chronological proof.
	StatusIndeterminate VerdictStatus = "indeterminate"
)

// Verdict is the result of validating a proposed parent/child direction.
//
// Reason and Suggestion are presentation text produced here once and
// passed through by callers, never re-derived. SuggestedKind is the
// corrected kind for the original subject→other direction when
// inference found one.
type Verdict struct {
	Status        VerdictStatus
	Reason        string
	Suggestion    string
	SuggestedKind kin.Kind
}

// ValidateParentChild decides whether the proposed direction is
// chronologically legal. subjectIsParent=true proposes "subject is the
// parent of other"; false proposes "subject is the child of other".
//
// This function is the SINGLE temporal rule in the system - both strict
// and smart write modes call it, so they can never disagree.
//
// Rules (strict inequality, day granularity):
//   - either birth date unknown → Indeterminate
//   - parent must be born strictly BEFORE the child; born the same day
//     is invalid in both directions (twins cannot be parent and child),
//     and no corrected direction is suggested
//   - otherwise Invalid, with the reversed direction as remediation
func ValidateParentChild(subject, other kin.Person, subjectIsParent bool) Verdict {
	if subject.BirthDate.IsZero() || other.BirthDate.IsZero() {
		return Verdict{Status: StatusIndeterminate}
	}

	if subject.BirthDate.Equal(other.BirthDate) {
		return Verdict{
			Status: StatusInvalid,
			Reason: fmt.Sprintf("%s (b. %d) and %s (b. %d) were born the same day and cannot be parent and child",
				subject.DisplayName(), subject.BirthDate.Year,
				other.DisplayName(), other.BirthDate.Year),
		}
	}

	ok := subject.BirthDate.Before(other.BirthDate)
	if !subjectIsParent {
		ok = subject.BirthDate.After(other.BirthDate)
	}
	if ok {
		return Verdict{Status: StatusValid}
	}

	// The proposed direction is backwards; the reverse is legal.
	parent, child, _ := InferParentChild(subject, other)
	suggested := kin.KindChild
	if parent.ID == subject.ID {
		suggested = kin.KindParent
	}

	var reason string
	if subjectIsParent {
		reason = fmt.Sprintf("%s (b. %d) cannot be the parent of %s (b. %d): a parent must be born strictly before the child",
			subject.DisplayName(), subject.BirthDate.Year,
			other.DisplayName(), other.BirthDate.Year)
	} else {
		reason = fmt.Sprintf("%s (b. %d) cannot be the child of %s (b. %d): a child must be born strictly after the parent",
			subject.DisplayName(), subject.BirthDate.Year,
			other.DisplayName(), other.BirthDate.Year)
	}

	return Verdict{
		Status:        StatusInvalid,
		Reason:        reason,
		Suggestion:    fmt.Sprintf("did you mean: %s is the parent of %s?", parent.DisplayName(), child.DisplayName()),
		SuggestedKind: suggested,
	}
}

// InferParentChild suggests the chronologically consistent direction for
// a parent/child relation between two people: the earlier-born person is
// the parent. Returns ok=false when birth dates are equal or either is
// missing - no suggestion can be made.
func InferParentChild(a, b kin.Person) (parent, child kin.Person, ok bool) {
	if a.BirthDate.IsZero() || b.BirthDate.IsZero() || a.BirthDate.Equal(b.BirthDate) {
		return kin.Person{}, kin.Person{}, false
	}
	if a.BirthDate.Before(b.BirthDate) {
		return a, b, true
	}
	return b, a, true
}
