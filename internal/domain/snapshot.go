package domain

// Snapshot is the full in-memory copy of all five collections, loaded
// wholesale after every mutation. It is a derived, disposable projection
// for display layers; services never depend on it.
type Snapshot struct {
	Stages       []*Stage
	Contacts     []*Contact
	Deals        []*Deal
	Activities   []*Activity
	StageHistory []*StageHistory
}
