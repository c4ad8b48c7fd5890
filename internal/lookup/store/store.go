package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jkweon/txscreen/internal/lookup"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadEntries reads the industry lookup table in insertion order and repairs
// the synthetic entries before returning, so every caller sees a complete
// table.
func (s *Store) LoadEntries(ctx context.Context) ([]lookup.Entry, error) {
	query := `
		SELECT class, weight, code, sub_class
		FROM industry_entries
		ORDER BY created_at, class
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing industry entries: %w", err)
	}
	defer rows.Close()

	var entries []lookup.Entry

	for rows.Next() {
		var e lookup.Entry

		var weight string

		if err := rows.Scan(&e.Class, &weight, &e.Code, &e.SubClass); err != nil {
			return nil, fmt.Errorf("scanning industry entry: %w", err)
		}

		w, err := decimal.NewFromString(weight)
		if err != nil {
			return nil, fmt.Errorf("parsing weight %q: %w", weight, err)
		}

		e.Weight = w
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading industry entries: %w", err)
	}

	return lookup.EnsureDefaults(entries), nil
}
