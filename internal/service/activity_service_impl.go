package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityRepo
	deals      repository.DealRepo
}

func NewActivityService(activities repository.ActivityRepo, deals repository.DealRepo) ActivityService {
	return &activityService{activities: activities, deals: deals}
}

func (s *activityService) Add(ctx context.Context, dealID, rawType, note string, dueAt *time.Time) (*domain.Activity, error) {
	if _, err := s.deals.GetByID(ctx, dealID); err != nil {
		return nil, err
	}
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, domain.Validationf("activity note is required")
	}

	act := &domain.Activity{
		ID:        uuid.New().String(),
		DealID:    dealID,
		Type:      domain.NormalizeActivityType(rawType),
		Note:      note,
		DueAt:     dueAt,
		Done:      false,
		CreatedAt: nowUTC(),
	}
	if err := s.activities.Create(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

func (s *activityService) MarkDone(ctx context.Context, id string) (*domain.Activity, error) {
	act, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if act.Done {
		return act, nil
	}
	act.Done = true
	if err := s.activities.Update(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

func (s *activityService) ListByDeal(ctx context.Context, dealID string) ([]*domain.Activity, error) {
	return s.activities.ListByDeal(ctx, dealID)
}
