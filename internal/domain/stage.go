package domain

// Stage is an ordered step in the sales pipeline. Ord values define the
// pipeline order ascending; they need not be contiguous but must stay
// pairwise distinct across the stage set.
type Stage struct {
	ID   string
	Name string
	Ord  int
}
