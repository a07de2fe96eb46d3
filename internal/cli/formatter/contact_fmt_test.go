package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatContactList_NullFieldsRenderAsDash(t *testing.T) {
	now := time.Now().UTC()
	phone := "+628123"
	contacts := []*domain.Contact{
		{
			ID:        "11111111-aaaa",
			Name:      "Budi",
			Phone:     &phone,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	out := FormatContactList(contacts)

	assert.Contains(t, out, "Budi")
	assert.Contains(t, out, "+628123")
	assert.Contains(t, out, "-")
}

func TestFormatContactCard_IncludesNotesAndDeals(t *testing.T) {
	now := time.Now().UTC()
	notes := "met at expo"
	c := &domain.Contact{
		ID: "c1", Name: "Siti", Notes: &notes,
		CreatedAt: now, UpdatedAt: now,
	}
	v := 2500.0
	deals := []*domain.Deal{
		{ID: "d1", Title: "Audit contract", ContactID: &c.ID, StageID: "s1",
			Status: domain.DealWon, Value: &v, CreatedAt: now, UpdatedAt: now},
	}

	out := FormatContactCard(c, deals)

	assert.Contains(t, out, "Siti")
	assert.Contains(t, out, "met at expo")
	assert.Contains(t, out, "Audit contract")
	assert.Contains(t, out, "WON")
}
