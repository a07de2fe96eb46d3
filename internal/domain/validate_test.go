package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageSet() []*Stage {
	return []*Stage{
		{ID: "s1", Name: "Prospect", Ord: 0},
		{ID: "s2", Name: "Discovery", Ord: 1},
		{ID: "s3", Name: "Proposal", Ord: 2},
	}
}

func TestValidateStageOrdering_Distinct(t *testing.T) {
	assert.NoError(t, ValidateStageOrdering(stageSet()))
}

func TestValidateStageOrdering_Duplicate(t *testing.T) {
	stages := stageSet()
	stages[2].Ord = 1
	err := ValidateStageOrdering(stages)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "duplicate stage order")
}

func TestValidateStageOrdering_NonContiguousOK(t *testing.T) {
	stages := []*Stage{
		{ID: "a", Name: "A", Ord: 0},
		{ID: "b", Name: "B", Ord: 10},
		{ID: "c", Name: "C", Ord: 3},
	}
	assert.NoError(t, ValidateStageOrdering(stages))
}

func TestIsBackwardMove(t *testing.T) {
	stages := stageSet()
	assert.False(t, IsBackwardMove(stages, "s1", "s2"), "forward")
	assert.True(t, IsBackwardMove(stages, "s3", "s1"), "backward")
	assert.False(t, IsBackwardMove(stages, "s2", "s2"), "sideways")
}

func TestIsBackwardMove_DanglingStageTreatedAsFirst(t *testing.T) {
	stages := stageSet()
	// Unknown ids resolve to ord 0, so a move from an unknown stage is
	// never backward and a move to one is backward from anywhere past ord 0.
	assert.False(t, IsBackwardMove(stages, "missing", "s2"))
	assert.True(t, IsBackwardMove(stages, "s2", "missing"))
}

func TestValidateDealTransition_TerminalRejected(t *testing.T) {
	for _, status := range []DealStatus{DealWon, DealLost} {
		d := &Deal{Status: status}
		err := ValidateDealTransition(d, DealWon, "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "already closed")
	}
}

func TestValidateDealTransition_LostRequiresReason(t *testing.T) {
	d := &Deal{Status: DealOpen}
	err := ValidateDealTransition(d, DealLost, "   ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	assert.NoError(t, ValidateDealTransition(d, DealLost, "budget cut"))
	assert.NoError(t, ValidateDealTransition(d, DealWon, ""))
}
