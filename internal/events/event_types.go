package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntrySubmitted  EventType = "entry_submitted"
	EventStoreReset      EventType = "store_reset"
	EventExportGenerated EventType = "export_generated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EntrySubmittedPayload payload.
type EntrySubmittedPayload struct {
	Department   string `json:"department"`
	Priority     int    `json:"priority"`
	IssuePreview string `json:"issue_preview"`
	Contact      bool   `json:"contact"`
}

// StoreResetPayload payload.
type StoreResetPayload struct {
	DestroyedCount int `json:"destroyed_count"`
}

// ExportGeneratedPayload payload.
type ExportGeneratedPayload struct {
	RowCount int `json:"row_count"`
}
