package domain

import "time"

// Deal is a sales opportunity. ContactID is a weak reference: the contact
// may be absent and lookups must degrade to "unset" rather than fail.
// StageID must reference an existing stage while the deal is open.
type Deal struct {
	ID              string
	ContactID       *string
	Title           string
	StageID         string
	Status          DealStatus
	Value           *float64
	ExpectedCloseAt *time.Time
	WonAt           *time.Time
	LostAt          *time.Time
	LostReason      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsTerminal reports whether the deal has been closed won or lost.
func (d *Deal) IsTerminal() bool {
	return d.Status.IsTerminal()
}
