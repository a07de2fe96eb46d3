package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDealRepo(db)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Consulting - PT X", "stage-1",
		testutil.WithContact("contact-1"),
		testutil.WithValue(20000000),
	)
	require.NoError(t, repo.Create(ctx, deal))

	fetched, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Consulting - PT X", fetched.Title)
	assert.Equal(t, "stage-1", fetched.StageID)
	assert.Equal(t, domain.DealOpen, fetched.Status)
	require.NotNil(t, fetched.ContactID)
	assert.Equal(t, "contact-1", *fetched.ContactID)
	require.NotNil(t, fetched.Value)
	assert.Equal(t, 20000000.0, *fetched.Value)
	assert.Nil(t, fetched.WonAt)
	assert.Nil(t, fetched.LostAt)
	assert.Nil(t, fetched.LostReason)
	assert.Equal(t, deal.CreatedAt, fetched.CreatedAt)
}

func TestDealRepo_NullableFieldsRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDealRepo(db)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Bare deal", "stage-1")
	require.NoError(t, repo.Create(ctx, deal))

	fetched, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.ContactID)
	assert.Nil(t, fetched.Value)
	assert.Nil(t, fetched.ExpectedCloseAt)
}

func TestDealRepo_ListOpenByStage(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDealRepo(db)
	ctx := context.Background()

	inStage := testutil.NewTestDeal("In stage", "stage-1")
	otherStage := testutil.NewTestDeal("Other stage", "stage-2")
	closed := testutil.NewTestDeal("Closed", "stage-1", testutil.WithDealStatus(domain.DealWon))
	require.NoError(t, repo.Create(ctx, inStage))
	require.NoError(t, repo.Create(ctx, otherStage))
	require.NoError(t, repo.Create(ctx, closed))

	deals, err := repo.ListOpenByStage(ctx, "stage-1")
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, inStage.ID, deals[0].ID)
}

func TestDealRepo_ListByStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDealRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestDeal("Open", "s1")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestDeal("Won", "s1", testutil.WithDealStatus(domain.DealWon))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestDeal("Lost", "s1", testutil.WithDealStatus(domain.DealLost))))

	won, err := repo.ListByStatus(ctx, domain.DealWon)
	require.NoError(t, err)
	require.Len(t, won, 1)
	assert.Equal(t, "Won", won[0].Title)
}

func TestDealRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDealRepo(db)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Deal", "stage-1")
	require.NoError(t, repo.Create(ctx, deal))

	now := time.Now().UTC().Truncate(time.Millisecond)
	deal.Status = domain.DealLost
	deal.LostAt = &now
	deal.LostReason = domain.OptionalStr("budget cut")
	deal.UpdatedAt = now
	require.NoError(t, repo.Update(ctx, deal))

	fetched, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DealLost, fetched.Status)
	require.NotNil(t, fetched.LostAt)
	assert.Equal(t, now, *fetched.LostAt)
	require.NotNil(t, fetched.LostReason)
	assert.Equal(t, "budget cut", *fetched.LostReason)
}

func TestDealRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDealRepo(db)

	deal := testutil.NewTestDeal("Ghost", "stage-1")
	err := repo.Update(context.Background(), deal)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
