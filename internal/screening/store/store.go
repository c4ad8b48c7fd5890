package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jkweon/txscreen/internal/record"
	"github.com/jkweon/txscreen/internal/screening"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) BeginSave(ctx context.Context) (screening.SaveTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning save: %w", err)
	}

	return &saveTx{tx: tx}, nil
}

func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (*screening.Run, error) {
	query := `
		SELECT id, record_count, created_at
		FROM screening_runs
		WHERE id = $1
	`

	var run screening.Run

	err := s.db.QueryRowContext(ctx, query, id).Scan(&run.ID, &run.RecordCount, &run.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run %s not found", id)
		}

		return nil, fmt.Errorf("getting run: %w", err)
	}

	return &run, nil
}

func (s *Store) ListRuns(ctx context.Context) ([]*screening.Run, error) {
	query := `
		SELECT id, record_count, created_at
		FROM screening_runs
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*screening.Run

	for rows.Next() {
		var run screening.Run

		if err := rows.Scan(&run.ID, &run.RecordCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading runs: %w", err)
	}

	return runs, nil
}

const selectRecordColumns = `
	id, institution, account_no, tx_date, tx_time, deposit, withdrawal, cancel,
	description, keyword, category, biz_reg_no, industry_code, industry_class,
	risk_keyword, risk_class, risk_score
`

func (s *Store) ListRecords(ctx context.Context, runID uuid.UUID) ([]*record.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM screening_records
		WHERE run_id = $1
		ORDER BY risk_score DESC, tx_date, tx_time`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []*record.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	return records, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*record.Record, error) {
	var rec record.Record

	var cancel, score string

	if err := s.Scan(
		&rec.ID, &rec.Institution, &rec.AccountNo, &rec.Date, &rec.Time,
		&rec.Deposit, &rec.Withdrawal, &cancel,
		&rec.Description, &rec.Keyword, &rec.Category,
		&rec.BizRegNo, &rec.IndustryCode, &rec.IndustryClass,
		&rec.RiskKeyword, &rec.RiskClass, &score,
	); err != nil {
		return nil, err
	}

	rec.Cancel = record.CancelState(cancel)

	d, err := decimal.NewFromString(score)
	if err != nil {
		return nil, fmt.Errorf("parsing risk score %q: %w", score, err)
	}

	rec.RiskScore = d

	return &rec, nil
}

type saveTx struct {
	tx *sql.Tx
}

func (t *saveTx) CreateRun(ctx context.Context, run *screening.Run) error {
	query := `
		INSERT INTO screening_runs (id, record_count, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	if err := t.tx.QueryRowContext(ctx, query, run.ID, run.RecordCount).Scan(&run.CreatedAt); err != nil {
		return fmt.Errorf("creating run: %w", err)
	}

	return nil
}

func (t *saveTx) CreateRecords(ctx context.Context, runID uuid.UUID, records []*record.Record) error {
	query := `
		INSERT INTO screening_records (
			id, run_id, institution, account_no, tx_date, tx_time,
			deposit, withdrawal, cancel, description, keyword, category,
			biz_reg_no, industry_code, industry_class,
			risk_keyword, risk_class, risk_score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	stmt, err := t.tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			rec.ID, runID, rec.Institution, rec.AccountNo, rec.Date, rec.Time,
			rec.Deposit, rec.Withdrawal, string(rec.Cancel),
			rec.Description, rec.Keyword, rec.Category,
			rec.BizRegNo, rec.IndustryCode, rec.IndustryClass,
			rec.RiskKeyword, rec.RiskClass, rec.RiskScore.String(),
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", rec.ID, err)
		}
	}

	return nil
}

func (t *saveTx) Commit() error {
	return t.tx.Commit()
}

func (t *saveTx) Rollback() error {
	return t.tx.Rollback()
}
