package domain

import "strings"

// ValidateStageOrdering checks that ord values are pairwise distinct.
// Used before accepting a reorder.
func ValidateStageOrdering(stages []*Stage) error {
	seen := make(map[int]string, len(stages))
	for _, s := range stages {
		if prev, ok := seen[s.Ord]; ok {
			return Validationf("duplicate stage order %d (%q and %q)", s.Ord, prev, s.Name)
		}
		seen[s.Ord] = s.Name
	}
	return nil
}

// StageOrd returns the ord of the stage with the given id, or 0 when the
// reference dangles. Matches lenient lookup semantics: absent means unset,
// never a failure.
func StageOrd(stages []*Stage, stageID string) int {
	for _, s := range stages {
		if s.ID == stageID {
			return s.Ord
		}
	}
	return 0
}

// IsBackwardMove reports whether moving from fromStageID to toStageID goes
// against pipeline order. Backward moves require a non-empty audit note.
func IsBackwardMove(stages []*Stage, fromStageID, toStageID string) bool {
	return StageOrd(stages, toStageID) < StageOrd(stages, fromStageID)
}

// ValidateDealTransition checks the legality of a status transition.
// Terminal deals admit no further transitions; closing lost requires a
// non-empty reason.
func ValidateDealTransition(current *Deal, next DealStatus, lostReason string) error {
	if current.IsTerminal() {
		return Validationf("deal is already closed (%s)", current.Status)
	}
	if next == DealLost && strings.TrimSpace(lostReason) == "" {
		return Validationf("lost reason is required")
	}
	return nil
}
