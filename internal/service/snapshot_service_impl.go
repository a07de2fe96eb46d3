package service

import (
	"context"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
)

type snapshotService struct {
	stages     repository.StageRepo
	contacts   repository.ContactRepo
	deals      repository.DealRepo
	activities repository.ActivityRepo
	history    repository.StageHistoryRepo
}

func NewSnapshotService(
	stages repository.StageRepo,
	contacts repository.ContactRepo,
	deals repository.DealRepo,
	activities repository.ActivityRepo,
	history repository.StageHistoryRepo,
) SnapshotService {
	return &snapshotService{
		stages:     stages,
		contacts:   contacts,
		deals:      deals,
		activities: activities,
		history:    history,
	}
}

func (s *snapshotService) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}
	var err error
	if snap.Stages, err = s.stages.List(ctx); err != nil {
		return nil, err
	}
	if snap.Contacts, err = s.contacts.List(ctx); err != nil {
		return nil, err
	}
	if snap.Deals, err = s.deals.List(ctx); err != nil {
		return nil, err
	}
	if snap.Activities, err = s.activities.List(ctx); err != nil {
		return nil, err
	}
	if snap.StageHistory, err = s.history.List(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}
