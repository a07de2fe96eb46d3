package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/alexanderramin/dealdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	stageRepo := repository.NewSQLiteStageRepo(db)
	contactRepo := repository.NewSQLiteContactRepo(db)
	dealRepo := repository.NewSQLiteDealRepo(db)
	activityRepo := repository.NewSQLiteActivityRepo(db)
	historyRepo := repository.NewSQLiteStageHistoryRepo(db)
	uow := testutil.NewTestUoW(db)

	contacts := service.NewContactService(contactRepo)
	snapshots := service.NewSnapshotService(stageRepo, contactRepo, dealRepo, activityRepo, historyRepo)

	return &App{
		Stages:     service.NewStageService(stageRepo, uow),
		Contacts:   contacts,
		Deals:      service.NewDealService(dealRepo, stageRepo, historyRepo, uow),
		Activities: service.NewActivityService(activityRepo, dealRepo),
		Snapshots:  snapshots,
		Backups:    service.NewBackupService(snapshots, uow),
		Imports:    service.NewImportService(contacts),

		// Prompts disabled: CLI tests drive everything through flags.
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedStage(t *testing.T, app *App, name string) string {
	t.Helper()
	stage, err := app.Stages.Create(context.Background(), name)
	require.NoError(t, err)
	return stage.ID
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "dealdesk")
}

// --- stage commands ---

func TestStageAddAndSwap(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "stage", "add", "Prospecting")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "stage", "add", "Closing")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "stage", "swap", "Prospecting", "Closing")
	require.NoError(t, err)

	stages, err := app.Stages.List(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, "Closing", stages[0].Name)
}

func TestStageRename_ByName(t *testing.T) {
	app := testApp(t)
	seedStage(t, app, "Old")

	_, err := executeCmd(t, app, "stage", "rename", "Old", "New")
	require.NoError(t, err)

	stages, err := app.Stages.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New", stages[0].Name)
}

// --- contact commands ---

func TestContactAddListUpdate(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	_, err := executeCmd(t, app, "contact", "add", "Budi", "--phone", "+628123", "--company", "PT Maju")
	require.NoError(t, err)

	contacts, err := app.Contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.NotNil(t, contacts[0].Phone)

	// Update without --phone clears the stored phone.
	_, err = executeCmd(t, app, "contact", "update", contacts[0].ID, "--email", "budi@example.com")
	require.NoError(t, err)

	updated, err := app.Contacts.GetByID(ctx, contacts[0].ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Phone)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "budi@example.com", *updated.Email)
}

// --- deal commands ---

func TestDealLifecycleViaCommands(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	seedStage(t, app, "Prospecting")
	seedStage(t, app, "Negotiation")

	_, err := executeCmd(t, app, "deal", "add", "Website revamp", "--stage", "Prospecting", "--value", "2500")
	require.NoError(t, err)

	deals, err := app.Deals.List(ctx)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	dealID := deals[0].ID

	_, err = executeCmd(t, app, "deal", "move", dealID, "Negotiation")
	require.NoError(t, err)

	// Backward move without a note fails in non-interactive mode.
	_, err = executeCmd(t, app, "deal", "move", dealID, "Prospecting")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "deal", "move", dealID, "Prospecting", "--note", "client paused")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "deal", "lost", dealID, "--reason", "budget cut")
	require.NoError(t, err)

	deal, err := app.Deals.GetByID(ctx, dealID)
	require.NoError(t, err)
	assert.Equal(t, "lost", string(deal.Status))

	history, err := app.Deals.History(ctx, dealID)
	require.NoError(t, err)
	assert.Len(t, history, 3, "created, forward move, backward move")
}

func TestDealLost_NonInteractiveRequiresReason(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	seedStage(t, app, "Prospecting")
	_, err := executeCmd(t, app, "deal", "add", "Deal", "--stage", "Prospecting")
	require.NoError(t, err)
	deals, err := app.Deals.List(ctx)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "deal", "lost", deals[0].ID)
	assert.Error(t, err)
}

func TestDealShow_UnknownPrefix(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "deal", "show", "zzzz")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- activity commands ---

func TestActivityAddAndDone(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	seedStage(t, app, "Prospecting")
	_, err := executeCmd(t, app, "deal", "add", "Deal", "--stage", "Prospecting")
	require.NoError(t, err)
	deals, err := app.Deals.List(ctx)
	require.NoError(t, err)
	dealID := deals[0].ID

	_, err = executeCmd(t, app, "activity", "add", dealID, "kickoff call", "--type", "call")
	require.NoError(t, err)

	activities, err := app.Activities.ListByDeal(ctx, dealID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.False(t, activities[0].Done)

	_, err = executeCmd(t, app, "activity", "done", dealID, activities[0].ID)
	require.NoError(t, err)

	activities, err = app.Activities.ListByDeal(ctx, dealID)
	require.NoError(t, err)
	assert.True(t, activities[0].Done)
}

// --- backup commands ---

func TestBackupExportRestoreViaCommands(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	seedStage(t, app, "Prospecting")
	_, err := executeCmd(t, app, "contact", "add", "Budi")
	require.NoError(t, err)

	path := t.TempDir() + "/backup.json"
	_, err = executeCmd(t, app, "backup", "export", "-o", path)
	require.NoError(t, err)

	// Wipe via restore of the exported file after adding extra data.
	_, err = executeCmd(t, app, "contact", "add", "Extra")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "backup", "restore", path)
	assert.Error(t, err, "non-interactive restore without --yes is refused")

	_, err = executeCmd(t, app, "backup", "restore", path, "--yes")
	require.NoError(t, err)

	contacts, err := app.Contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Budi", contacts[0].Name)
}

// --- import commands ---

func TestImportCSVViaCommand(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	path := t.TempDir() + "/contacts.csv"
	csv := "name,phone,email\nBudi,0812,budi@example.com\nSiti,,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	_, err := executeCmd(t, app, "import", "csv", path)
	require.NoError(t, err)

	contacts, err := app.Contacts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}
