package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jkweon/txscreen/internal/rule"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListRules returns the full rule table in insertion order. Rules have no
// surrogate id; the (class, keywords, category) triple is the identity.
func (s *Store) ListRules(ctx context.Context) ([]rule.Rule, error) {
	query := `
		SELECT class, keywords, category, created_at
		FROM classification_rules
		ORDER BY created_at, class, keywords
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	defer rows.Close()

	var rules []rule.Rule

	for rows.Next() {
		var r rule.Rule

		var classStr string

		if err := rows.Scan(&classStr, &r.Keywords, &r.Category, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}

		r.Class = rule.Class(classStr)
		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	return rules, nil
}

func (s *Store) CreateRule(ctx context.Context, r rule.Rule) error {
	query := `
		INSERT INTO classification_rules (class, keywords, category, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query, r.Class, r.Keywords, r.Category); err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}

	return nil
}

func (s *Store) UpdateRule(ctx context.Context, key rule.Key, r rule.Rule) error {
	query := `
		UPDATE classification_rules
		SET class = $1, keywords = $2, category = $3
		WHERE class = $4 AND keywords = $5 AND category = $6
	`

	res, err := s.db.ExecContext(ctx, query,
		r.Class, r.Keywords, r.Category,
		key.Class, key.Keywords, key.Category,
	)
	if err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}

	if n == 0 {
		return rule.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteRule(ctx context.Context, key rule.Key) error {
	query := `
		DELETE FROM classification_rules
		WHERE class = $1 AND keywords = $2 AND category = $3
	`

	res, err := s.db.ExecContext(ctx, query, key.Class, key.Keywords, key.Category)
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}

	if n == 0 {
		return rule.ErrNotFound
	}

	return nil
}
