package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportContacts_SkipsNamelessRecords(t *testing.T) {
	_, contacts, _, _, _, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(NewContactService(contacts))

	count, err := svc.ImportContacts(ctx, []importer.RawContact{
		{Name: "Budi", Phone: "0812"},
		{Name: "   ", Email: "anon@example.com"},
		{Name: "Siti"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	listed, err := contacts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestImportCSV_HeaderedFile(t *testing.T) {
	_, contacts, _, _, _, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(NewContactService(contacts))

	csv := "Name,Phone,Email,Company,Notes\n" +
		"Budi,0812,budi@example.com,PT Maju,\"met at expo, booth 3\"\n" +
		",0899,,,\n" +
		"Siti,,,PT Jaya,\n"

	count, err := svc.ImportCSV(ctx, csv)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "row without a name is skipped")

	listed, err := contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, c := range listed {
		if c.Name == "Budi" {
			require.NotNil(t, c.Notes)
			assert.Equal(t, "met at expo, booth 3", *c.Notes)
		}
		if c.Name == "Siti" {
			assert.Nil(t, c.Phone, "blank cells become null")
		}
	}
}

func TestImportCSV_NoValidRecords(t *testing.T) {
	_, contacts, _, _, _, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(NewContactService(contacts))

	count, err := svc.ImportCSV(ctx, "name,phone\n,0812\n,0899\n")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	listed, err := contacts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestImportVCF_ParsesCards(t *testing.T) {
	_, contacts, _, _, _, _ := setupRepos(t)
	ctx := context.Background()
	svc := NewImportService(NewContactService(contacts))

	vcf := "BEGIN:VCARD\nVERSION:3.0\nFN:Budi Santoso\nTEL;TYPE=CELL:+62 812-3456\nORG:PT Maju\nEND:VCARD\n" +
		"BEGIN:VCARD\nVERSION:3.0\nTEL:0899\nEND:VCARD\n"

	count, err := svc.ImportVCF(ctx, vcf)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "card without FN is skipped")

	listed, err := contacts.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Budi Santoso", listed[0].Name)
	require.NotNil(t, listed[0].Phone)
	assert.Equal(t, "+628123456", *listed[0].Phone)
	require.NotNil(t, listed[0].Company)
	assert.Equal(t, "PT Maju", *listed[0].Company)
}
