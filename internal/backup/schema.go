// Package backup defines the wire format of backup documents: a single
// JSON object with an exportedAt timestamp and one array per collection.
// Timestamps travel as epoch milliseconds and optional fields as JSON
// null, so restore(export(x)) reproduces x field for field.
package backup

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is a full snapshot of all five collections. A document missing
// any of the five arrays is valid; the absent collections are empty.
type Document struct {
	ExportedAt   string         `json:"exportedAt"`
	Stages       []Stage        `json:"stages"`
	Contacts     []Contact      `json:"contacts"`
	Deals        []Deal         `json:"deals"`
	Activities   []Activity     `json:"activities"`
	StageHistory []StageHistory `json:"stageHistory"`
}

type Stage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Ord  int    `json:"ord"`
}

type Contact struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Company   *string `json:"company"`
	Notes     *string `json:"notes"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

type Deal struct {
	ID              string   `json:"id"`
	ContactID       *string  `json:"contactId"`
	Title           string   `json:"title"`
	StageID         string   `json:"stageId"`
	Status          string   `json:"status"`
	Value           *float64 `json:"value"`
	ExpectedCloseAt *int64   `json:"expectedCloseAt"`
	WonAt           *int64   `json:"wonAt"`
	LostAt          *int64   `json:"lostAt"`
	LostReason      *string  `json:"lostReason"`
	CreatedAt       int64    `json:"createdAt"`
	UpdatedAt       int64    `json:"updatedAt"`
}

type Activity struct {
	ID        string `json:"id"`
	DealID    string `json:"dealId"`
	Type      string `json:"type"`
	Note      string `json:"note"`
	DueAt     *int64 `json:"dueAt"`
	Done      bool   `json:"done"`
	CreatedAt int64  `json:"createdAt"`
}

type StageHistory struct {
	ID          string  `json:"id"`
	DealID      string  `json:"dealId"`
	FromStageID *string `json:"fromStageId"`
	ToStageID   string  `json:"toStageId"`
	Note        *string `json:"note"`
	CreatedAt   int64   `json:"createdAt"`
}

// FormatError rejects a document that fails structural parsing. Restore
// reports it before any destructive step.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid backup document: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parse decodes a backup document. Any structural failure comes back as
// a *FormatError.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Err: err}
	}
	return &doc, nil
}

// Marshal renders the document the way exports are written: two-space
// indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup document: %w", err)
	}
	return data, nil
}

// NewDocument stamps an empty document with the export time in ISO-8601.
func NewDocument(exportedAt time.Time) *Document {
	return &Document{ExportedAt: exportedAt.UTC().Format(time.RFC3339)}
}
