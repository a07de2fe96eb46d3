package domain

import "time"

// Activity is a logged interaction tied to a deal. Done is monotonic:
// once marked true it never reverts.
type Activity struct {
	ID        string
	DealID    string
	Type      ActivityType
	Note      string
	DueAt     *time.Time
	Done      bool
	CreatedAt time.Time
}
