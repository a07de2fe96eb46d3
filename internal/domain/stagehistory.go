package domain

import "time"

// StageHistory is an append-only audit record: one row per deal creation
// (FromStageID nil) and one per stage transition. Rows are never updated
// or deleted outside a full restore.
type StageHistory struct {
	ID          string
	DealID      string
	FromStageID *string
	ToStageID   string
	Note        *string
	CreatedAt   time.Time
}
