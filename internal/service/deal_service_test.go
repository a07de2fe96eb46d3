package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDealService(t *testing.T) (DealService, repository.StageRepo, repository.DealRepo, repository.StageHistoryRepo) {
	stages, _, deals, _, history, uow := setupRepos(t)
	return NewDealService(deals, stages, history, uow), stages, deals, history
}

func seedPipeline(t *testing.T, ctx context.Context, stages repository.StageRepo, names ...string) []*domain.Stage {
	t.Helper()
	out := make([]*domain.Stage, 0, len(names))
	for i, name := range names {
		st := testutil.NewTestStage(name, testutil.WithOrd(i))
		require.NoError(t, stages.Create(ctx, st))
		out = append(out, st)
	}
	return out
}

func TestDealCreate_WritesCreatedHistoryRow(t *testing.T) {
	svc, stages, _, history := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A", "B")

	deal, err := svc.Create(ctx, DealInput{Title: "Website revamp", StageID: pipe[0].ID, Value: "1500,50"})
	require.NoError(t, err)
	assert.Equal(t, domain.DealOpen, deal.Status)
	require.NotNil(t, deal.Value)
	assert.Equal(t, 1500.50, *deal.Value)
	assert.Nil(t, deal.ContactID)

	rows, err := history.ListByDeal(ctx, deal.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].FromStageID, "creation row has no origin stage")
	assert.Equal(t, pipe[0].ID, rows[0].ToStageID)
	require.NotNil(t, rows[0].Note)
	assert.Equal(t, "Created", *rows[0].Note)
}

func TestDealCreate_InvalidInputs(t *testing.T) {
	svc, stages, deals, history := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A")

	_, err := svc.Create(ctx, DealInput{Title: "  ", StageID: pipe[0].ID})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Create(ctx, DealInput{Title: "Orphan", StageID: "no-such-stage"})
	assert.True(t, domain.IsValidation(err))

	// Nothing was persisted by either failure.
	listed, err := deals.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
	rows, err := history.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDealCreate_NonNumericValueStoredAsNull(t *testing.T) {
	svc, stages, _, _ := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A")

	deal, err := svc.Create(ctx, DealInput{Title: "No price yet", StageID: pipe[0].ID, Value: "call me"})
	require.NoError(t, err)
	assert.Nil(t, deal.Value)
}

func TestMoveStage_ForwardNeedsNoNote(t *testing.T) {
	svc, stages, _, history := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A", "B")

	deal, err := svc.Create(ctx, DealInput{Title: "Deal", StageID: pipe[0].ID})
	require.NoError(t, err)

	moved, err := svc.MoveStage(ctx, deal.ID, pipe[1].ID, "")
	require.NoError(t, err)
	assert.Equal(t, pipe[1].ID, moved.StageID)

	rows, err := history.ListByDeal(ctx, deal.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2, "creation row plus one move row")
}

func TestMoveStage_BackwardRequiresNote(t *testing.T) {
	svc, stages, deals, history := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A", "B")

	deal, err := svc.Create(ctx, DealInput{Title: "Deal", StageID: pipe[0].ID})
	require.NoError(t, err)
	_, err = svc.MoveStage(ctx, deal.ID, pipe[1].ID, "")
	require.NoError(t, err)

	// B back to A without a note: rejected, no row appended, stage unchanged.
	_, err = svc.MoveStage(ctx, deal.ID, pipe[0].ID, "   ")
	assert.True(t, domain.IsValidation(err))

	stored, err := deals.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, pipe[1].ID, stored.StageID)
	rows, err := history.ListByDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Same move with a reason succeeds and records it.
	moved, err := svc.MoveStage(ctx, deal.ID, pipe[0].ID, "client paused")
	require.NoError(t, err)
	assert.Equal(t, pipe[0].ID, moved.StageID)

	rows, err = history.ListByDeal(ctx, deal.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.NotNil(t, rows[0].Note)
	assert.Equal(t, "client paused", *rows[0].Note)
	require.NotNil(t, rows[0].FromStageID)
	assert.Equal(t, pipe[1].ID, *rows[0].FromStageID)
}

func TestMoveStage_SameStageRejected(t *testing.T) {
	svc, stages, _, _ := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A", "B")

	deal, err := svc.Create(ctx, DealInput{Title: "Deal", StageID: pipe[0].ID})
	require.NoError(t, err)

	_, err = svc.MoveStage(ctx, deal.ID, pipe[0].ID, "")
	assert.True(t, domain.IsValidation(err))
}

func TestMoveStage_TerminalDealRejected(t *testing.T) {
	svc, stages, _, _ := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A", "B")

	deal, err := svc.Create(ctx, DealInput{Title: "Deal", StageID: pipe[0].ID})
	require.NoError(t, err)
	_, err = svc.CloseWon(ctx, deal.ID)
	require.NoError(t, err)

	_, err = svc.MoveStage(ctx, deal.ID, pipe[1].ID, "reopening attempt")
	assert.True(t, domain.IsValidation(err))
}

func TestCloseWon_SetsStatusAndTimestamp(t *testing.T) {
	svc, stages, _, _ := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A")

	deal, err := svc.Create(ctx, DealInput{Title: "Deal", StageID: pipe[0].ID})
	require.NoError(t, err)

	won, err := svc.CloseWon(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealWon, won.Status)
	require.NotNil(t, won.WonAt)
	assert.Nil(t, won.LostAt)

	// Terminal state admits no further transitions.
	_, err = svc.CloseLost(ctx, deal.ID, "changed my mind")
	assert.True(t, domain.IsValidation(err))
	_, err = svc.CloseWon(ctx, deal.ID)
	assert.True(t, domain.IsValidation(err))
}

func TestCloseLost_RequiresReason(t *testing.T) {
	svc, stages, deals, _ := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A")

	deal, err := svc.Create(ctx, DealInput{Title: "Deal", StageID: pipe[0].ID})
	require.NoError(t, err)

	_, err = svc.CloseLost(ctx, deal.ID, "  ")
	assert.True(t, domain.IsValidation(err))

	stored, err := deals.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealOpen, stored.Status)

	lost, err := svc.CloseLost(ctx, deal.ID, "budget cut")
	require.NoError(t, err)
	assert.Equal(t, domain.DealLost, lost.Status)
	require.NotNil(t, lost.LostAt)
	require.NotNil(t, lost.LostReason)
	assert.Equal(t, "budget cut", *lost.LostReason)
}

func TestEditFields_AllowedOnClosedDeal(t *testing.T) {
	svc, stages, _, _ := setupDealService(t)
	ctx := context.Background()
	pipe := seedPipeline(t, ctx, stages, "A")

	deal, err := svc.Create(ctx, DealInput{Title: "Deal", StageID: pipe[0].ID, Value: "100"})
	require.NoError(t, err)
	_, err = svc.CloseWon(ctx, deal.ID)
	require.NoError(t, err)

	due := time.Now().UTC().Truncate(time.Millisecond).AddDate(0, 1, 0)
	edited, err := svc.EditFields(ctx, deal.ID, "Deal (final)", "250", &due)
	require.NoError(t, err)
	assert.Equal(t, "Deal (final)", edited.Title)
	require.NotNil(t, edited.Value)
	assert.Equal(t, 250.0, *edited.Value)
	require.NotNil(t, edited.ExpectedCloseAt)
	assert.Equal(t, domain.DealWon, edited.Status, "editing must not reopen a closed deal")

	_, err = svc.EditFields(ctx, deal.ID, "", "250", nil)
	assert.True(t, domain.IsValidation(err))
}

func TestDealGetByID_UnknownIDNotFound(t *testing.T) {
	svc, _, _, _ := setupDealService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
