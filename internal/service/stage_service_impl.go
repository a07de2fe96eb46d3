package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/db"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// defaultStages is the stage set seeded on first run, in pipeline order.
var defaultStages = []string{
	"1. Potensial Prospek",
	"2. Meet/Discovery",
	"3. Proposal/Penawaran",
	"4. Follow-up/Negosiasi",
}

type stageService struct {
	stages repository.StageRepo
	uow    db.UnitOfWork
}

func NewStageService(stages repository.StageRepo, uow db.UnitOfWork) StageService {
	return &stageService{stages: stages, uow: uow}
}

func (s *stageService) Create(ctx context.Context, name string) (*domain.Stage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validationf("stage name is required")
	}

	existing, err := s.stages.List(ctx)
	if err != nil {
		return nil, err
	}
	ord := 0
	for _, st := range existing {
		if st.Ord >= ord {
			ord = st.Ord + 1
		}
	}

	stage := &domain.Stage{
		ID:   uuid.New().String(),
		Name: name,
		Ord:  ord,
	}
	if err := s.stages.Create(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *stageService) Rename(ctx context.Context, id, newName string) (*domain.Stage, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, domain.Validationf("stage name is required")
	}

	stage, err := s.stages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stage.Name = newName
	// Ord untouched: rename never reorders.
	if err := s.stages.Update(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *stageService) SwapOrder(ctx context.Context, aID, bID string) error {
	if aID == bID {
		return domain.Validationf("cannot swap a stage with itself")
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStages := repository.NewSQLiteStageRepo(tx)

		a, err := txStages.GetByID(ctx, aID)
		if err != nil {
			return err
		}
		b, err := txStages.GetByID(ctx, bID)
		if err != nil {
			return err
		}

		a.Ord, b.Ord = b.Ord, a.Ord
		if err := txStages.Update(ctx, a); err != nil {
			return err
		}
		return txStages.Update(ctx, b)
	})
}

// SeedDefaults creates the default stage set iff the stage table is still
// empty, so a crash mid-seed just reseeds on the next run.
func (s *stageService) SeedDefaults(ctx context.Context) error {
	existing, err := s.stages.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for ord, name := range defaultStages {
		stage := &domain.Stage{
			ID:   uuid.New().String(),
			Name: name,
			Ord:  ord,
		}
		if err := s.stages.Create(ctx, stage); err != nil {
			return err
		}
	}
	return nil
}

func (s *stageService) List(ctx context.Context) ([]*domain.Stage, error) {
	return s.stages.List(ctx)
}

func (s *stageService) GetByID(ctx context.Context, id string) (*domain.Stage, error) {
	return s.stages.GetByID(ctx, id)
}
