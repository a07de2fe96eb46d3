package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
)

// SQLiteDealRepo implements DealRepo over a SQLite database or transaction.
type SQLiteDealRepo struct {
	db db.DBTX
}

func NewSQLiteDealRepo(db db.DBTX) *SQLiteDealRepo {
	return &SQLiteDealRepo{db: db}
}

const dealCols = `id, contact_id, title, stage_id, status, value, expected_close_at,
	won_at, lost_at, lost_reason, created_at, updated_at`

func (r *SQLiteDealRepo) Create(ctx context.Context, d *domain.Deal) error {
	query := `INSERT INTO deals (` + dealCols + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, dealBindValues(d)...)
	if err != nil {
		return fmt.Errorf("inserting deal: %w", err)
	}
	return nil
}

func (r *SQLiteDealRepo) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dealCols+` FROM deals WHERE id = ?`, id)
	d, err := scanDeal(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deal %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning deal: %w", err)
	}
	return d, nil
}

func (r *SQLiteDealRepo) List(ctx context.Context) ([]*domain.Deal, error) {
	return r.queryDeals(ctx, `SELECT `+dealCols+` FROM deals ORDER BY updated_at DESC`)
}

func (r *SQLiteDealRepo) ListOpenByStage(ctx context.Context, stageID string) ([]*domain.Deal, error) {
	return r.queryDeals(ctx,
		`SELECT `+dealCols+` FROM deals WHERE status = 'open' AND stage_id = ? ORDER BY updated_at DESC`,
		stageID,
	)
}

func (r *SQLiteDealRepo) ListByStatus(ctx context.Context, status domain.DealStatus) ([]*domain.Deal, error) {
	return r.queryDeals(ctx,
		`SELECT `+dealCols+` FROM deals WHERE status = ? ORDER BY updated_at DESC`,
		string(status),
	)
}

func (r *SQLiteDealRepo) Update(ctx context.Context, d *domain.Deal) error {
	query := `UPDATE deals SET contact_id = ?, title = ?, stage_id = ?, status = ?, value = ?,
		expected_close_at = ?, won_at = ?, lost_at = ?, lost_reason = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.ContactID, d.Title, d.StageID, string(d.Status), d.Value,
		nullableTimeToMs(d.ExpectedCloseAt),
		nullableTimeToMs(d.WonAt), nullableTimeToMs(d.LostAt), d.LostReason,
		timeToMs(d.UpdatedAt), d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating deal: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("deal %s: %w", d.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteDealRepo) Put(ctx context.Context, d *domain.Deal) error {
	query := `INSERT OR REPLACE INTO deals (` + dealCols + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, dealBindValues(d)...)
	if err != nil {
		return fmt.Errorf("putting deal: %w", err)
	}
	return nil
}

func (r *SQLiteDealRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM deals`); err != nil {
		return fmt.Errorf("clearing deals: %w", err)
	}
	return nil
}

func (r *SQLiteDealRepo) queryDeals(ctx context.Context, query string, args ...any) ([]*domain.Deal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing deals: %w", err)
	}
	defer rows.Close()

	var deals []*domain.Deal
	for rows.Next() {
		d, err := scanDeal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning deal row: %w", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deals: %w", err)
	}
	return deals, nil
}

func dealBindValues(d *domain.Deal) []any {
	return []any{
		d.ID, d.ContactID, d.Title, d.StageID, string(d.Status), d.Value,
		nullableTimeToMs(d.ExpectedCloseAt),
		nullableTimeToMs(d.WonAt), nullableTimeToMs(d.LostAt), d.LostReason,
		timeToMs(d.CreatedAt), timeToMs(d.UpdatedAt),
	}
}

func scanDeal(scan func(dest ...any) error) (*domain.Deal, error) {
	var d domain.Deal
	var contactID, lostReason, statusStr sql.NullString
	var value sql.NullFloat64
	var expectedCloseMs, wonMs, lostMs sql.NullInt64
	var createdMs, updatedMs int64

	err := scan(
		&d.ID, &contactID, &d.Title, &d.StageID, &statusStr, &value,
		&expectedCloseMs, &wonMs, &lostMs, &lostReason,
		&createdMs, &updatedMs,
	)
	if err != nil {
		return nil, err
	}

	d.ContactID = nullStrToPtr(contactID)
	d.Status = domain.DealStatus(statusStr.String)
	d.Value = nullFloatToPtr(value)
	d.ExpectedCloseAt = parseNullableMs(expectedCloseMs)
	d.WonAt = parseNullableMs(wonMs)
	d.LostAt = parseNullableMs(lostMs)
	d.LostReason = nullStrToPtr(lostReason)
	d.CreatedAt = msToTime(createdMs)
	d.UpdatedAt = msToTime(updatedMs)
	return &d, nil
}
