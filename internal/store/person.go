package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
)

// PutPerson inserts or updates a person record.
// An existing record with the same ID has its name and dates replaced
// and updated_at bumped; created_at is preserved.
func (s *Store) PutPerson(ctx context.Context, p kin.Person) error {
	if p.ID == "" {
		return fmt.Errorf("put person: id is required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO persons (id, name, birth_date, death_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birth_date = excluded.birth_date,
			death_date = excluded.death_date,
			updated_at = excluded.updated_at
	`,
		p.ID,
		p.Name,
		nullableDate(p.BirthDate),
		nullableDate(p.DeathDate),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("put person %s: %w", p.ID, err)
	}

	return nil
}

// GetPerson retrieves a person by ID.
// Returns ErrNotFound if no such record exists.
func (s *Store) GetPerson(ctx context.Context, id string) (kin.Person, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, birth_date, death_date
		FROM persons
		WHERE id = ?
	`, id)

	p, err := scanPerson(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return kin.Person{}, fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return kin.Person{}, fmt.Errorf("get person %s: %w", id, err)
	}

	return p, nil
}

// ListPersons returns all person records ordered by ID.
// Returns an empty slice (not nil) if no records exist.
func (s *Store) ListPersons(ctx context.Context) ([]kin.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, birth_date, death_date
		FROM persons
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query persons: %w", err)
	}
	defer rows.Close()

	var persons []kin.Person
	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}

	if persons == nil {
		persons = []kin.Person{}
	}

	return persons, nil
}

// DeletePerson deletes a person record. Deleting a missing person is a
// no-op. Fails if relation edges still reference the person.
func (s *Store) DeletePerson(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete person %s: %w", id, err)
	}
	return nil
}

// scanPerson parses a person row into a kin.Person, converting the
// nullable date columns at the store boundary.
func scanPerson(scan func(...any) error) (kin.Person, error) {
	var p kin.Person
	var birth, death sql.NullString

	if err := scan(&p.ID, &p.Name, &birth, &death); err != nil {
		return kin.Person{}, err
	}

	var err error
	if p.BirthDate, err = parseNullableDate(birth); err != nil {
		return kin.Person{}, fmt.Errorf("person %s birth_date: %w", p.ID, err)
	}
	if p.DeathDate, err = parseNullableDate(death); err != nil {
		return kin.Person{}, fmt.Errorf("person %s death_date: %w", p.ID, err)
	}

	return p, nil
}

func nullableDate(d kin.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.String()
}

func parseNullableDate(v sql.NullString) (kin.Date, error) {
	if !v.Valid {
		return kin.Date{}, nil
	}
	return kin.ParseDate(v.String)
}
