package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type contactService struct {
	contacts repository.ContactRepo
}

func NewContactService(contacts repository.ContactRepo) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) CreateOrUpdate(ctx context.Context, input ContactInput) (*domain.Contact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.Validationf("contact name is required")
	}

	now := nowUTC()
	if input.ID == "" {
		contact := &domain.Contact{
			ID:        uuid.New().String(),
			Name:      name,
			Phone:     domain.OptionalStr(input.Phone),
			Email:     domain.OptionalStr(input.Email),
			Company:   domain.OptionalStr(input.Company),
			Notes:     domain.OptionalStr(input.Notes),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.contacts.Create(ctx, contact); err != nil {
			return nil, err
		}
		return contact, nil
	}

	contact, err := s.contacts.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	contact.Name = name
	contact.Phone = domain.OptionalStr(input.Phone)
	contact.Email = domain.OptionalStr(input.Email)
	contact.Company = domain.OptionalStr(input.Company)
	contact.Notes = domain.OptionalStr(input.Notes)
	contact.UpdatedAt = now
	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

func (s *contactService) List(ctx context.Context) ([]*domain.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *contactService) Search(ctx context.Context, query string) ([]*domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return contacts, nil
	}
	var matched []*domain.Contact
	for _, c := range contacts {
		if c.MatchesQuery(query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
