package backup

import (
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// FromSnapshot builds a backup document from a loaded snapshot. Every
// record appears exactly once with its full field set.
func FromSnapshot(snap *domain.Snapshot, exportedAt time.Time) *Document {
	doc := NewDocument(exportedAt)
	for _, s := range snap.Stages {
		doc.Stages = append(doc.Stages, Stage{ID: s.ID, Name: s.Name, Ord: s.Ord})
	}
	for _, c := range snap.Contacts {
		doc.Contacts = append(doc.Contacts, Contact{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			Email:     c.Email,
			Company:   c.Company,
			Notes:     c.Notes,
			CreatedAt: c.CreatedAt.UnixMilli(),
			UpdatedAt: c.UpdatedAt.UnixMilli(),
		})
	}
	for _, d := range snap.Deals {
		doc.Deals = append(doc.Deals, Deal{
			ID:              d.ID,
			ContactID:       d.ContactID,
			Title:           d.Title,
			StageID:         d.StageID,
			Status:          string(d.Status),
			Value:           d.Value,
			ExpectedCloseAt: msPtr(d.ExpectedCloseAt),
			WonAt:           msPtr(d.WonAt),
			LostAt:          msPtr(d.LostAt),
			LostReason:      d.LostReason,
			CreatedAt:       d.CreatedAt.UnixMilli(),
			UpdatedAt:       d.UpdatedAt.UnixMilli(),
		})
	}
	for _, a := range snap.Activities {
		doc.Activities = append(doc.Activities, Activity{
			ID:        a.ID,
			DealID:    a.DealID,
			Type:      string(a.Type),
			Note:      a.Note,
			DueAt:     msPtr(a.DueAt),
			Done:      a.Done,
			CreatedAt: a.CreatedAt.UnixMilli(),
		})
	}
	for _, h := range snap.StageHistory {
		doc.StageHistory = append(doc.StageHistory, StageHistory{
			ID:          h.ID,
			DealID:      h.DealID,
			FromStageID: h.FromStageID,
			ToStageID:   h.ToStageID,
			Note:        h.Note,
			CreatedAt:   h.CreatedAt.UnixMilli(),
		})
	}
	return doc
}

// Snapshot converts the document back into domain records, in the same
// shape SnapshotService.Load would produce.
func (doc *Document) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{}
	for _, s := range doc.Stages {
		snap.Stages = append(snap.Stages, &domain.Stage{ID: s.ID, Name: s.Name, Ord: s.Ord})
	}
	for _, c := range doc.Contacts {
		snap.Contacts = append(snap.Contacts, &domain.Contact{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			Email:     c.Email,
			Company:   c.Company,
			Notes:     c.Notes,
			CreatedAt: msToTime(c.CreatedAt),
			UpdatedAt: msToTime(c.UpdatedAt),
		})
	}
	for _, d := range doc.Deals {
		snap.Deals = append(snap.Deals, &domain.Deal{
			ID:              d.ID,
			ContactID:       d.ContactID,
			Title:           d.Title,
			StageID:         d.StageID,
			Status:          domain.DealStatus(d.Status),
			Value:           d.Value,
			ExpectedCloseAt: timePtr(d.ExpectedCloseAt),
			WonAt:           timePtr(d.WonAt),
			LostAt:          timePtr(d.LostAt),
			LostReason:      d.LostReason,
			CreatedAt:       msToTime(d.CreatedAt),
			UpdatedAt:       msToTime(d.UpdatedAt),
		})
	}
	for _, a := range doc.Activities {
		snap.Activities = append(snap.Activities, &domain.Activity{
			ID:        a.ID,
			DealID:    a.DealID,
			Type:      domain.ActivityType(a.Type),
			Note:      a.Note,
			DueAt:     timePtr(a.DueAt),
			Done:      a.Done,
			CreatedAt: msToTime(a.CreatedAt),
		})
	}
	for _, h := range doc.StageHistory {
		snap.StageHistory = append(snap.StageHistory, &domain.StageHistory{
			ID:          h.ID,
			DealID:      h.DealID,
			FromStageID: h.FromStageID,
			ToStageID:   h.ToStageID,
			Note:        h.Note,
			CreatedAt:   msToTime(h.CreatedAt),
		})
	}
	return snap
}

func msPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func timePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := msToTime(*ms)
	return &t
}

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
