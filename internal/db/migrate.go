package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Timestamps are stored as epoch milliseconds. References between tables
// are intentionally weak (no FOREIGN KEY clauses): a deal may point at a
// contact that no longer exists and a restored backup may carry dangling
// ids; readers resolve them leniently.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS stages (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		ord  INTEGER NOT NULL
	)`,

	// ord index stays non-unique: distinctness lives in the service layer,
	// and a mid-swap state must not trip a storage constraint.
	`CREATE INDEX IF NOT EXISTS idx_stages_ord ON stages(ord)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT,
		email      TEXT,
		company    TEXT,
		notes      TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_contacts_updated ON contacts(updated_at)`,

	`CREATE TABLE IF NOT EXISTS deals (
		id                TEXT PRIMARY KEY,
		contact_id        TEXT,
		title             TEXT NOT NULL,
		stage_id          TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'open'
		                  CHECK(status IN ('open','won','lost')),
		value             REAL,
		expected_close_at INTEGER,
		won_at            INTEGER,
		lost_at           INTEGER,
		lost_reason       TEXT,
		created_at        INTEGER NOT NULL,
		updated_at        INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deals_updated ON deals(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_deals_status ON deals(status)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id         TEXT PRIMARY KEY,
		deal_id    TEXT NOT NULL,
		type       TEXT NOT NULL,
		note       TEXT NOT NULL,
		due_at     INTEGER,
		done       INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_created ON activities(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_deal ON activities(deal_id)`,

	`CREATE TABLE IF NOT EXISTS stage_history (
		id            TEXT PRIMARY KEY,
		deal_id       TEXT NOT NULL,
		from_stage_id TEXT,
		to_stage_id   TEXT NOT NULL,
		note          TEXT,
		created_at    INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_stage_history_created ON stage_history(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_stage_history_deal ON stage_history(deal_id)`,
}
