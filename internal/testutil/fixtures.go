package testutil

import (
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/google/uuid"
)

// Stage options

type StageOption func(*domain.Stage)

func WithOrd(ord int) StageOption {
	return func(s *domain.Stage) {
		s.Ord = ord
	}
}

func NewTestStage(name string, opts ...StageOption) *domain.Stage {
	s := &domain.Stage{
		ID:   uuid.New().String(),
		Name: name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Contact options

type ContactOption func(*domain.Contact)

func WithPhone(phone string) ContactOption {
	return func(c *domain.Contact) {
		c.Phone = domain.OptionalStr(phone)
	}
}

func WithEmail(email string) ContactOption {
	return func(c *domain.Contact) {
		c.Email = domain.OptionalStr(email)
	}
}

func WithCompany(company string) ContactOption {
	return func(c *domain.Contact) {
		c.Company = domain.OptionalStr(company)
	}
}

func NewTestContact(name string, opts ...ContactOption) *domain.Contact {
	now := time.Now().UTC().Truncate(time.Millisecond)
	c := &domain.Contact{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deal options

type DealOption func(*domain.Deal)

func WithContact(contactID string) DealOption {
	return func(d *domain.Deal) {
		d.ContactID = &contactID
	}
}

func WithValue(v float64) DealOption {
	return func(d *domain.Deal) {
		d.Value = &v
	}
}

func WithDealStatus(status domain.DealStatus) DealOption {
	return func(d *domain.Deal) {
		d.Status = status
	}
}

func NewTestDeal(title, stageID string, opts ...DealOption) *domain.Deal {
	now := time.Now().UTC().Truncate(time.Millisecond)
	d := &domain.Deal{
		ID:        uuid.New().String(),
		Title:     title,
		StageID:   stageID,
		Status:    domain.DealOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Activity options

type ActivityOption func(*domain.Activity)

func WithDone() ActivityOption {
	return func(a *domain.Activity) {
		a.Done = true
	}
}

func WithActivityType(t domain.ActivityType) ActivityOption {
	return func(a *domain.Activity) {
		a.Type = t
	}
}

func NewTestActivity(dealID, note string, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:        uuid.New().String(),
		DealID:    dealID,
		Type:      domain.ActivityCall,
		Note:      note,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
