package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
)

// SQLiteContactRepo implements ContactRepo over a SQLite database or transaction.
type SQLiteContactRepo struct {
	db db.DBTX
}

func NewSQLiteContactRepo(db db.DBTX) *SQLiteContactRepo {
	return &SQLiteContactRepo{db: db}
}

const contactCols = `id, name, phone, email, company, notes, created_at, updated_at`

func (r *SQLiteContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	query := `INSERT INTO contacts (` + contactCols + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Company, c.Notes,
		timeToMs(c.CreatedAt), timeToMs(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}
	return nil
}

func (r *SQLiteContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contactCols+` FROM contacts WHERE id = ?`, id)
	c, err := scanContact(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning contact: %w", err)
	}
	return c, nil
}

func (r *SQLiteContactRepo) List(ctx context.Context) ([]*domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contactCols+` FROM contacts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

func (r *SQLiteContactRepo) Update(ctx context.Context, c *domain.Contact) error {
	query := `UPDATE contacts SET name = ?, phone = ?, email = ?, company = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Phone, c.Email, c.Company, c.Notes, timeToMs(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("contact %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *SQLiteContactRepo) Put(ctx context.Context, c *domain.Contact) error {
	query := `INSERT OR REPLACE INTO contacts (` + contactCols + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Company, c.Notes,
		timeToMs(c.CreatedAt), timeToMs(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("putting contact: %w", err)
	}
	return nil
}

func (r *SQLiteContactRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}
	return nil
}

func scanContact(scan func(dest ...any) error) (*domain.Contact, error) {
	var c domain.Contact
	var phone, email, company, notes sql.NullString
	var createdMs, updatedMs int64

	if err := scan(&c.ID, &c.Name, &phone, &email, &company, &notes, &createdMs, &updatedMs); err != nil {
		return nil, err
	}

	c.Phone = nullStrToPtr(phone)
	c.Email = nullStrToPtr(email)
	c.Company = nullStrToPtr(company)
	c.Notes = nullStrToPtr(notes)
	c.CreatedAt = msToTime(createdMs)
	c.UpdatedAt = msToTime(updatedMs)
	return &c, nil
}
