package domain

import "strings"

type DealStatus string

const (
	DealOpen DealStatus = "open"
	DealWon  DealStatus = "won"
	DealLost DealStatus = "lost"
)

// IsTerminal reports whether the status admits no further transitions.
func (s DealStatus) IsTerminal() bool {
	return s == DealWon || s == DealLost
}

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityMeeting ActivityType = "meeting"
	ActivityTask    ActivityType = "task"
	ActivityNote    ActivityType = "note"
)

// ValidActivityTypes is the canonical set of recognized activity type strings.
var ValidActivityTypes = map[string]bool{
	"call": true, "meeting": true, "task": true, "note": true,
}

// NormalizeActivityType lower-cases and trims the raw type string.
// Unrecognized types are preserved verbatim rather than rejected, so
// imported or hand-typed data is never silently dropped.
func NormalizeActivityType(raw string) ActivityType {
	return ActivityType(strings.ToLower(strings.TrimSpace(raw)))
}
