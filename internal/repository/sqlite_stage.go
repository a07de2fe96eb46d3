package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
)

// SQLiteStageRepo implements StageRepo over a SQLite database or transaction.
type SQLiteStageRepo struct {
	db db.DBTX
}

func NewSQLiteStageRepo(db db.DBTX) *SQLiteStageRepo {
	return &SQLiteStageRepo{db: db}
}

func (r *SQLiteStageRepo) Create(ctx context.Context, s *domain.Stage) error {
	query := `INSERT INTO stages (id, name, ord) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Ord)
	if err != nil {
		return fmt.Errorf("inserting stage: %w", err)
	}
	return nil
}

func (r *SQLiteStageRepo) GetByID(ctx context.Context, id string) (*domain.Stage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, ord FROM stages WHERE id = ?`, id)
	var s domain.Stage
	if err := row.Scan(&s.ID, &s.Name, &s.Ord); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("stage %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning stage: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStageRepo) List(ctx context.Context) ([]*domain.Stage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, ord FROM stages ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}
	defer rows.Close()

	var stages []*domain.Stage
	for rows.Next() {
		var s domain.Stage
		if err := rows.Scan(&s.ID, &s.Name, &s.Ord); err != nil {
			return nil, fmt.Errorf("scanning stage row: %w", err)
		}
		stages = append(stages, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stages: %w", err)
	}
	return stages, nil
}

func (r *SQLiteStageRepo) Update(ctx context.Context, s *domain.Stage) error {
	query := `UPDATE stages SET name = ?, ord = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.Ord, s.ID)
	if err != nil {
		return fmt.Errorf("updating stage: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("stage %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteStageRepo) Put(ctx context.Context, s *domain.Stage) error {
	query := `INSERT OR REPLACE INTO stages (id, name, ord) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Ord)
	if err != nil {
		return fmt.Errorf("putting stage: %w", err)
	}
	return nil
}

func (r *SQLiteStageRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stages`); err != nil {
		return fmt.Errorf("clearing stages: %w", err)
	}
	return nil
}
