package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/dealdesk/internal/cli"
	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dealdesk/dealdesk.db
	dbPath := os.Getenv("DEALDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dealdesk", "dealdesk.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	stageRepo := repository.NewSQLiteStageRepo(database)
	contactRepo := repository.NewSQLiteContactRepo(database)
	dealRepo := repository.NewSQLiteDealRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	historyRepo := repository.NewSQLiteStageHistoryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	stageSvc := service.NewStageService(stageRepo, uow)
	contactSvc := service.NewContactService(contactRepo)
	snapshotSvc := service.NewSnapshotService(stageRepo, contactRepo, dealRepo, activityRepo, historyRepo)

	// First run gets the default pipeline.
	if err := stageSvc.SeedDefaults(context.Background()); err != nil {
		return fmt.Errorf("seeding default stages: %w", err)
	}

	app := &cli.App{
		Stages:     stageSvc,
		Contacts:   contactSvc,
		Deals:      service.NewDealService(dealRepo, stageRepo, historyRepo, uow),
		Activities: service.NewActivityService(activityRepo, dealRepo),
		Snapshots:  snapshotSvc,
		Backups:    service.NewBackupService(snapshotSvc, uow),
		Imports:    service.NewImportService(contactSvc),
	}

	// Detect interactive terminal: forms only make sense on a TTY.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
