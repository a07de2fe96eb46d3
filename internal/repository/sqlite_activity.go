package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo over a SQLite database or transaction.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(db db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

const activityCols = `id, deal_id, type, note, due_at, done, created_at`

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (` + activityCols + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.DealID, string(a.Type), a.Note,
		nullableTimeToMs(a.DueAt), boolToInt(a.Done), timeToMs(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+activityCols+` FROM activities WHERE id = ?`, id)
	a, err := scanActivity(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}
	return a, nil
}

func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	return r.queryActivities(ctx, `SELECT `+activityCols+` FROM activities ORDER BY created_at DESC, rowid DESC`)
}

func (r *SQLiteActivityRepo) ListByDeal(ctx context.Context, dealID string) ([]*domain.Activity, error) {
	return r.queryActivities(ctx,
		`SELECT `+activityCols+` FROM activities WHERE deal_id = ? ORDER BY created_at DESC, rowid DESC`,
		dealID,
	)
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET type = ?, note = ?, due_at = ?, done = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(a.Type), a.Note, nullableTimeToMs(a.DueAt), boolToInt(a.Done), a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("activity %s: %w", a.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteActivityRepo) Put(ctx context.Context, a *domain.Activity) error {
	query := `INSERT OR REPLACE INTO activities (` + activityCols + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.DealID, string(a.Type), a.Note,
		nullableTimeToMs(a.DueAt), boolToInt(a.Done), timeToMs(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("putting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activities`); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) queryActivities(ctx context.Context, query string, args ...any) ([]*domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func scanActivity(scan func(dest ...any) error) (*domain.Activity, error) {
	var a domain.Activity
	var typeStr string
	var dueMs sql.NullInt64
	var done int
	var createdMs int64

	if err := scan(&a.ID, &a.DealID, &typeStr, &a.Note, &dueMs, &done, &createdMs); err != nil {
		return nil, err
	}

	a.Type = domain.ActivityType(typeStr)
	a.DueAt = parseNullableMs(dueMs)
	a.Done = intToBool(done)
	a.CreatedAt = msToTime(createdMs)
	return &a, nil
}
