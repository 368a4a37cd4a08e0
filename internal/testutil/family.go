package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
	"github.com/nordmindi/kinship-atlas-sub002/internal/store"
)

// Family is the canonical test population: a couple born in the late
// 1940s/1950 and their two children. Birth dates are chosen so every
// parent/child direction has an unambiguous chronological answer.
type Family struct {
	Margaret kin.Person
	Henry    kin.Person
	Thomas   kin.Person
	Elena    kin.Person
}

// NewFamily returns the fixture population without touching storage.
func NewFamily() Family {
	return Family{
		Margaret: kin.Person{ID: "p-marge", Name: "Margaret", BirthDate: kin.NewDate(1950, time.June, 15)},
		Henry:    kin.Person{ID: "p-henry", Name: "Henry", BirthDate: kin.NewDate(1948, time.February, 1)},
		Thomas:   kin.Person{ID: "p-tom", Name: "Thomas", BirthDate: kin.NewDate(1980, time.March, 2)},
		Elena:    kin.Person{ID: "p-elena", Name: "Elena", BirthDate: kin.NewDate(1983, time.July, 21)},
	}
}

// All returns the family members in a stable order.
func (f Family) All() []kin.Person {
	return []kin.Person{f.Margaret, f.Henry, f.Thomas, f.Elena}
}

// IDs returns the member IDs in the same stable order as All.
func (f Family) IDs() []string {
	members := f.All()
	ids := make([]string, len(members))
	for i, p := range members {
		ids[i] = p.ID
	}
	return ids
}

// SeedFamily inserts the fixture population into the store.
func SeedFamily(ctx context.Context, s *store.Store) (Family, error) {
	f := NewFamily()
	for _, p := range f.All() {
		if err := s.PutPerson(ctx, p); err != nil {
			return Family{}, fmt.Errorf("seed family: %w", err)
		}
	}
	return f, nil
}
