package repository

import (
	"context"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// Every repository exposes Put (insert-or-replace keyed by id) and Clear
// (atomic full removal) alongside its CRUD methods; restore is built on
// those two primitives.

type StageRepo interface {
	Create(ctx context.Context, s *domain.Stage) error
	GetByID(ctx context.Context, id string) (*domain.Stage, error)
	// List returns stages ordered by ord ascending.
	List(ctx context.Context) ([]*domain.Stage, error)
	Update(ctx context.Context, s *domain.Stage) error
	Put(ctx context.Context, s *domain.Stage) error
	Clear(ctx context.Context) error
}

type ContactRepo interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	// List returns contacts ordered by updatedAt descending.
	List(ctx context.Context) ([]*domain.Contact, error)
	Update(ctx context.Context, c *domain.Contact) error
	Put(ctx context.Context, c *domain.Contact) error
	Clear(ctx context.Context) error
}

type DealRepo interface {
	Create(ctx context.Context, d *domain.Deal) error
	GetByID(ctx context.Context, id string) (*domain.Deal, error)
	// List returns deals ordered by updatedAt descending.
	List(ctx context.Context) ([]*domain.Deal, error)
	ListOpenByStage(ctx context.Context, stageID string) ([]*domain.Deal, error)
	ListByStatus(ctx context.Context, status domain.DealStatus) ([]*domain.Deal, error)
	Update(ctx context.Context, d *domain.Deal) error
	Put(ctx context.Context, d *domain.Deal) error
	Clear(ctx context.Context) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	// List returns activities ordered by createdAt descending.
	List(ctx context.Context) ([]*domain.Activity, error)
	ListByDeal(ctx context.Context, dealID string) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Put(ctx context.Context, a *domain.Activity) error
	Clear(ctx context.Context) error
}

// StageHistoryRepo is append-only: no update or delete outside Clear,
// which only restore uses.
type StageHistoryRepo interface {
	Create(ctx context.Context, h *domain.StageHistory) error
	// List returns history ordered by createdAt descending.
	List(ctx context.Context) ([]*domain.StageHistory, error)
	ListByDeal(ctx context.Context, dealID string) ([]*domain.StageHistory, error)
	Put(ctx context.Context, h *domain.StageHistory) error
	Clear(ctx context.Context) error
}
