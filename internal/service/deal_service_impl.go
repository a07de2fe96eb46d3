package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type dealService struct {
	deals   repository.DealRepo
	stages  repository.StageRepo
	history repository.StageHistoryRepo
	uow     db.UnitOfWork
}

func NewDealService(
	deals repository.DealRepo,
	stages repository.StageRepo,
	history repository.StageHistoryRepo,
	uow db.UnitOfWork,
) DealService {
	return &dealService{deals: deals, stages: stages, history: history, uow: uow}
}

func (s *dealService) Create(ctx context.Context, input DealInput) (*domain.Deal, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.Validationf("deal title is required")
	}

	// An open deal must reference an existing stage.
	if _, err := s.stages.GetByID(ctx, input.StageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Validationf("stage %q does not exist", input.StageID)
		}
		return nil, err
	}

	now := nowUTC()
	deal := &domain.Deal{
		ID:              uuid.New().String(),
		ContactID:       domain.OptionalStr(input.ContactID),
		Title:           title,
		StageID:         input.StageID,
		Status:          domain.DealOpen,
		Value:           domain.ParseValue(input.Value),
		ExpectedCloseAt: input.ExpectedCloseAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Deal row and its "Created" audit row commit together.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteDealRepo(tx).Create(ctx, deal); err != nil {
			return err
		}
		return repository.NewSQLiteStageHistoryRepo(tx).Create(ctx, &domain.StageHistory{
			ID:        uuid.New().String(),
			DealID:    deal.ID,
			ToStageID: deal.StageID,
			Note:      domain.OptionalStr("Created"),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *dealService) MoveStage(ctx context.Context, dealID, toStageID, note string) (*domain.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.IsTerminal() {
		return nil, domain.Validationf("deal is already closed (%s)", deal.Status)
	}
	if toStageID == deal.StageID {
		return nil, domain.Validationf("deal is already in that stage")
	}
	if _, err := s.stages.GetByID(ctx, toStageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Validationf("stage %q does not exist", toStageID)
		}
		return nil, err
	}

	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, err
	}
	note = strings.TrimSpace(note)
	if domain.IsBackwardMove(stages, deal.StageID, toStageID) && note == "" {
		return nil, domain.Validationf("a reason is required when moving a deal backward")
	}

	fromStageID := deal.StageID
	now := nowUTC()
	deal.StageID = toStageID
	deal.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteDealRepo(tx).Update(ctx, deal); err != nil {
			return err
		}
		return repository.NewSQLiteStageHistoryRepo(tx).Create(ctx, &domain.StageHistory{
			ID:          uuid.New().String(),
			DealID:      deal.ID,
			FromStageID: &fromStageID,
			ToStageID:   toStageID,
			Note:        domain.OptionalStr(note),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *dealService) CloseWon(ctx context.Context, dealID string) (*domain.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDealTransition(deal, domain.DealWon, ""); err != nil {
		return nil, err
	}

	now := nowUTC()
	deal.Status = domain.DealWon
	deal.WonAt = &now
	deal.UpdatedAt = now
	if err := s.deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *dealService) CloseLost(ctx context.Context, dealID, reason string) (*domain.Deal, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateDealTransition(deal, domain.DealLost, reason); err != nil {
		return nil, err
	}

	now := nowUTC()
	deal.Status = domain.DealLost
	deal.LostAt = &now
	deal.LostReason = domain.OptionalStr(reason)
	deal.UpdatedAt = now
	if err := s.deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *dealService) EditFields(ctx context.Context, dealID, title, value string, expectedCloseAt *time.Time) (*domain.Deal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.Validationf("deal title is required")
	}

	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}

	// Permitted on closed deals too: title, value and expected close date
	// stay editable after won/lost.
	deal.Title = title
	deal.Value = domain.ParseValue(value)
	deal.ExpectedCloseAt = expectedCloseAt
	deal.UpdatedAt = nowUTC()
	if err := s.deals.Update(ctx, deal); err != nil {
		return nil, err
	}
	return deal, nil
}

func (s *dealService) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	return s.deals.GetByID(ctx, id)
}

func (s *dealService) List(ctx context.Context) ([]*domain.Deal, error) {
	return s.deals.List(ctx)
}

func (s *dealService) ListOpenByStage(ctx context.Context, stageID string) ([]*domain.Deal, error) {
	return s.deals.ListOpenByStage(ctx, stageID)
}

func (s *dealService) ListByStatus(ctx context.Context, status domain.DealStatus) ([]*domain.Deal, error) {
	return s.deals.ListByStatus(ctx, status)
}

func (s *dealService) History(ctx context.Context, dealID string) ([]*domain.StageHistory, error) {
	return s.history.ListByDeal(ctx, dealID)
}
