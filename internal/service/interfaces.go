package service

import (
	"context"
	"time"

	"github.com/alexanderramin/dealdesk/internal/backup"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/importer"
)

type StageService interface {
	Create(ctx context.Context, name string) (*domain.Stage, error)
	Rename(ctx context.Context, id, newName string) (*domain.Stage, error)
	// SwapOrder exchanges the ord values of two stages. Both updates run
	// in one transaction, so ords stay pairwise distinct even on failure.
	SwapOrder(ctx context.Context, aID, bID string) error
	// SeedDefaults creates the default stage set iff no stages exist.
	SeedDefaults(ctx context.Context) error
	List(ctx context.Context) ([]*domain.Stage, error)
	GetByID(ctx context.Context, id string) (*domain.Stage, error)
}

// ContactInput carries raw form fields for createOrUpdate. Blank optional
// fields are normalized to nil before storage.
type ContactInput struct {
	ID      string // empty for a new contact
	Name    string
	Phone   string
	Email   string
	Company string
	Notes   string
}

type ContactService interface {
	CreateOrUpdate(ctx context.Context, input ContactInput) (*domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	// Search filters contacts by case-insensitive substring over
	// name, phone, email and company. Empty query returns everything.
	Search(ctx context.Context, query string) ([]*domain.Contact, error)
}

// DealInput carries raw fields for deal creation. Value is the raw user
// string; non-numeric input is stored as null rather than rejected.
type DealInput struct {
	ContactID       string // optional
	Title           string
	StageID         string
	Value           string
	ExpectedCloseAt *time.Time
}

type DealService interface {
	Create(ctx context.Context, input DealInput) (*domain.Deal, error)
	GetByID(ctx context.Context, id string) (*domain.Deal, error)
	List(ctx context.Context) ([]*domain.Deal, error)
	ListOpenByStage(ctx context.Context, stageID string) ([]*domain.Deal, error)
	ListByStatus(ctx context.Context, status domain.DealStatus) ([]*domain.Deal, error)
	// MoveStage transitions an open deal to another stage. Backward moves
	// require a non-empty note; the audit row is appended in the same
	// transaction as the deal update.
	MoveStage(ctx context.Context, dealID, toStageID, note string) (*domain.Deal, error)
	CloseWon(ctx context.Context, dealID string) (*domain.Deal, error)
	CloseLost(ctx context.Context, dealID, reason string) (*domain.Deal, error)
	// EditFields updates title, value and expected close date. Allowed
	// even on closed deals; title stays required.
	EditFields(ctx context.Context, dealID, title, value string, expectedCloseAt *time.Time) (*domain.Deal, error)
	History(ctx context.Context, dealID string) ([]*domain.StageHistory, error)
}

type ActivityService interface {
	Add(ctx context.Context, dealID, rawType, note string, dueAt *time.Time) (*domain.Activity, error)
	// MarkDone flips done false→true. Re-marking a done activity is a
	// no-op, not an error.
	MarkDone(ctx context.Context, id string) (*domain.Activity, error)
	ListByDeal(ctx context.Context, dealID string) ([]*domain.Activity, error)
}

type SnapshotService interface {
	// Load re-fetches all five collections in display order. Callers
	// reload wholesale after every mutation rather than patching.
	Load(ctx context.Context) (*domain.Snapshot, error)
}

type BackupService interface {
	Export(ctx context.Context) (*backup.Document, error)
	// Restore replaces all five collections with the document's contents.
	// A document that fails to parse aborts before anything is cleared.
	Restore(ctx context.Context, data []byte) error
}

type ImportService interface {
	// ImportContacts creates a contact per record with a non-empty name;
	// nameless records are skipped, not errors. Returns the count imported.
	ImportContacts(ctx context.Context, records []importer.RawContact) (int, error)
	ImportCSV(ctx context.Context, text string) (int, error)
	ImportVCF(ctx context.Context, text string) (int, error)
}
