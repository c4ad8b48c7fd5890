package screening

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jkweon/txscreen/internal/record"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=screening
type Repository interface {
	BeginSave(ctx context.Context) (SaveTx, error)
	GetRun(ctx context.Context, id uuid.UUID) (*Run, error)
	ListRuns(ctx context.Context) ([]*Run, error)
	ListRecords(ctx context.Context, runID uuid.UUID) ([]*record.Record, error)
}

// SaveTx writes a run and its records atomically: a partially saved batch
// is worse than no batch.
type SaveTx interface {
	CreateRun(ctx context.Context, run *Run) error
	CreateRecords(ctx context.Context, runID uuid.UUID, records []*record.Record) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveRun persists an enriched record batch as a new run.
func (s *Service) SaveRun(ctx context.Context, records []*record.Record) (*Run, error) {
	run := &Run{
		ID:          uuid.New(),
		RecordCount: len(records),
	}

	stx, err := s.repo.BeginSave(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin save: %w", err)
	}
	defer stx.Rollback()

	if err := stx.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	if err := stx.CreateRecords(ctx, run.ID, records); err != nil {
		return nil, fmt.Errorf("create records: %w", err)
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}

	return run, nil
}

func (s *Service) Runs(ctx context.Context) ([]*Run, error) {
	return s.repo.ListRuns(ctx)
}

func (s *Service) Run(ctx context.Context, id uuid.UUID) (*Run, error) {
	return s.repo.GetRun(ctx, id)
}

func (s *Service) Records(ctx context.Context, runID uuid.UUID) ([]*record.Record, error) {
	return s.repo.ListRecords(ctx, runID)
}
