package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
)

// SQLiteStageHistoryRepo implements StageHistoryRepo over a SQLite
// database or transaction. The table is an append-only audit log.
type SQLiteStageHistoryRepo struct {
	db db.DBTX
}

func NewSQLiteStageHistoryRepo(db db.DBTX) *SQLiteStageHistoryRepo {
	return &SQLiteStageHistoryRepo{db: db}
}

const historyCols = `id, deal_id, from_stage_id, to_stage_id, note, created_at`

func (r *SQLiteStageHistoryRepo) Create(ctx context.Context, h *domain.StageHistory) error {
	query := `INSERT INTO stage_history (` + historyCols + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.DealID, h.FromStageID, h.ToStageID, h.Note, timeToMs(h.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting stage history: %w", err)
	}
	return nil
}

func (r *SQLiteStageHistoryRepo) List(ctx context.Context) ([]*domain.StageHistory, error) {
	return r.queryHistory(ctx, `SELECT `+historyCols+` FROM stage_history ORDER BY created_at DESC, rowid DESC`)
}

func (r *SQLiteStageHistoryRepo) ListByDeal(ctx context.Context, dealID string) ([]*domain.StageHistory, error) {
	return r.queryHistory(ctx,
		`SELECT `+historyCols+` FROM stage_history WHERE deal_id = ? ORDER BY created_at DESC, rowid DESC`,
		dealID,
	)
}

func (r *SQLiteStageHistoryRepo) Put(ctx context.Context, h *domain.StageHistory) error {
	query := `INSERT OR REPLACE INTO stage_history (` + historyCols + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.DealID, h.FromStageID, h.ToStageID, h.Note, timeToMs(h.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("putting stage history: %w", err)
	}
	return nil
}

func (r *SQLiteStageHistoryRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stage_history`); err != nil {
		return fmt.Errorf("clearing stage history: %w", err)
	}
	return nil
}

func (r *SQLiteStageHistoryRepo) queryHistory(ctx context.Context, query string, args ...any) ([]*domain.StageHistory, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing stage history: %w", err)
	}
	defer rows.Close()

	var history []*domain.StageHistory
	for rows.Next() {
		var h domain.StageHistory
		var fromStage, note sql.NullString
		var createdMs int64
		if err := rows.Scan(&h.ID, &h.DealID, &fromStage, &h.ToStageID, &note, &createdMs); err != nil {
			return nil, fmt.Errorf("scanning stage history row: %w", err)
		}
		h.FromStageID = nullStrToPtr(fromStage)
		h.Note = nullStrToPtr(note)
		h.CreatedAt = msToTime(createdMs)
		history = append(history, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stage history: %w", err)
	}
	return history, nil
}
