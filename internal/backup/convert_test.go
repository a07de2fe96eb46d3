package backup

import (
	"testing"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *domain.Snapshot {
	now := time.UnixMilli(1700000000000).UTC()
	later := now.Add(time.Hour)
	return &domain.Snapshot{
		Stages: []*domain.Stage{
			{ID: "s1", Name: "Prospect", Ord: 0},
			{ID: "s2", Name: "Proposal", Ord: 1},
		},
		Contacts: []*domain.Contact{
			{ID: "c1", Name: "Budi", Phone: domain.OptionalStr("+62812"), CreatedAt: now, UpdatedAt: later},
		},
		Deals: []*domain.Deal{
			{
				ID: "d1", ContactID: domain.OptionalStr("c1"), Title: "Deal",
				StageID: "s1", Status: domain.DealOpen,
				CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "d2", Title: "Lost deal", StageID: "s2", Status: domain.DealLost,
				LostAt: &later, LostReason: domain.OptionalStr("budget"),
				CreatedAt: now, UpdatedAt: later,
			},
		},
		Activities: []*domain.Activity{
			{ID: "a1", DealID: "d1", Type: domain.ActivityCall, Note: "call", Done: true, CreatedAt: now},
		},
		StageHistory: []*domain.StageHistory{
			{ID: "h1", DealID: "d1", ToStageID: "s1", Note: domain.OptionalStr("Created"), CreatedAt: now},
		},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	snap := sampleSnapshot()
	doc := FromSnapshot(snap, time.Now())

	data, err := Marshal(doc)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	restored := parsed.Snapshot()
	assert.Equal(t, snap.Stages, restored.Stages)
	assert.Equal(t, snap.Contacts, restored.Contacts)
	assert.Equal(t, snap.Deals, restored.Deals)
	assert.Equal(t, snap.Activities, restored.Activities)
	assert.Equal(t, snap.StageHistory, restored.StageHistory)
}

func TestParse_RejectsMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)

	_, err = Parse([]byte(`"just a string"`))
	assert.ErrorAs(t, err, &fe)
}

func TestParse_MissingArraysTreatedAsEmpty(t *testing.T) {
	doc, err := Parse([]byte(`{"exportedAt":"2026-01-01T00:00:00Z","contacts":[{"id":"c1","name":"Budi","phone":null,"email":null,"company":null,"notes":null,"createdAt":1,"updatedAt":2}]}`))
	require.NoError(t, err)

	snap := doc.Snapshot()
	assert.Empty(t, snap.Stages)
	assert.Empty(t, snap.Deals)
	assert.Empty(t, snap.Activities)
	assert.Empty(t, snap.StageHistory)
	require.Len(t, snap.Contacts, 1)
	assert.Equal(t, "Budi", snap.Contacts[0].Name)
	assert.Nil(t, snap.Contacts[0].Phone)
}

func TestNewDocument_ISO8601Stamp(t *testing.T) {
	at := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	doc := NewDocument(at)
	assert.Equal(t, "2026-08-31T10:30:00Z", doc.ExportedAt)
}
