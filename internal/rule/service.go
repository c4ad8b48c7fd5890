package rule

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=rule
type Repository interface {
	ListRules(ctx context.Context) ([]Rule, error)
	CreateRule(ctx context.Context, r Rule) error
	UpdateRule(ctx context.Context, key Key, r Rule) error
	DeleteRule(ctx context.Context, key Key) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the full rule table in persisted order. The table is
// externally edited, so callers must not cache the result across runs.
func (s *Service) List(ctx context.Context) ([]Rule, error) {
	return s.repo.ListRules(ctx)
}

// Create validates the rule class and persists the rule. The class enum is
// enforced here, at the edit boundary, never inside the pipeline.
func (s *Service) Create(ctx context.Context, r Rule) error {
	if _, err := ParseClass(string(r.Class)); err != nil {
		return err
	}

	if err := s.repo.CreateRule(ctx, r); err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}

	return nil
}

// Update replaces the rule identified by key with r.
func (s *Service) Update(ctx context.Context, key Key, r Rule) error {
	if _, err := ParseClass(string(r.Class)); err != nil {
		return err
	}

	if err := s.repo.UpdateRule(ctx, key, r); err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}

	return nil
}

// Delete removes the rule identified by key.
func (s *Service) Delete(ctx context.Context, key Key) error {
	if err := s.repo.DeleteRule(ctx, key); err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}

	return nil
}
