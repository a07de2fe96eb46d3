package service

import (
	"context"
	"time"

	"github.com/alexanderramin/dealdesk/internal/backup"
	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/repository"
)

type backupService struct {
	snapshots SnapshotService
	uow       db.UnitOfWork
}

func NewBackupService(snapshots SnapshotService, uow db.UnitOfWork) BackupService {
	return &backupService{snapshots: snapshots, uow: uow}
}

func (s *backupService) Export(ctx context.Context) (*backup.Document, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	return backup.FromSnapshot(snap, time.Now().UTC()), nil
}

func (s *backupService) Restore(ctx context.Context, data []byte) error {
	// Parse failures abort before any collection is touched.
	doc, err := backup.Parse(data)
	if err != nil {
		return err
	}
	snap := doc.Snapshot()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		stages := repository.NewSQLiteStageRepo(tx)
		contacts := repository.NewSQLiteContactRepo(tx)
		deals := repository.NewSQLiteDealRepo(tx)
		activities := repository.NewSQLiteActivityRepo(tx)
		history := repository.NewSQLiteStageHistoryRepo(tx)

		if err := history.Clear(ctx); err != nil {
			return err
		}
		if err := activities.Clear(ctx); err != nil {
			return err
		}
		if err := deals.Clear(ctx); err != nil {
			return err
		}
		if err := contacts.Clear(ctx); err != nil {
			return err
		}
		if err := stages.Clear(ctx); err != nil {
			return err
		}

		for _, st := range snap.Stages {
			if err := stages.Put(ctx, st); err != nil {
				return err
			}
		}
		for _, c := range snap.Contacts {
			if err := contacts.Put(ctx, c); err != nil {
				return err
			}
		}
		for _, d := range snap.Deals {
			if err := deals.Put(ctx, d); err != nil {
				return err
			}
		}
		for _, a := range snap.Activities {
			if err := activities.Put(ctx, a); err != nil {
				return err
			}
		}
		for _, h := range snap.StageHistory {
			if err := history.Put(ctx, h); err != nil {
				return err
			}
		}
		return nil
	})
}
