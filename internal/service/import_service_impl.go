package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/importer"
)

type importService struct {
	contacts ContactService
}

func NewImportService(contacts ContactService) ImportService {
	return &importService{contacts: contacts}
}

func (s *importService) ImportContacts(ctx context.Context, records []importer.RawContact) (int, error) {
	imported := 0
	for _, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		_, err := s.contacts.CreateOrUpdate(ctx, ContactInput{
			Name:    rec.Name,
			Phone:   rec.Phone,
			Email:   rec.Email,
			Company: rec.Company,
			Notes:   rec.Notes,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func (s *importService) ImportCSV(ctx context.Context, text string) (int, error) {
	return s.ImportContacts(ctx, importer.ParseCSV(text))
}

func (s *importService) ImportVCF(ctx context.Context, text string) (int, error) {
	return s.ImportContacts(ctx, importer.ParseVCF(text))
}
