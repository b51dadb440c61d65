package domain

import "time"

// ChangeType names the mutation a ChangeEvent reports.
type ChangeType string

const (
	ChangeAdded         ChangeType = "added"
	ChangeStatusUpdated ChangeType = "status_updated"
	ChangeRemoved       ChangeType = "removed"
	ChangeRefreshed     ChangeType = "refreshed"
)

// ChangeEvent is emitted after an authoritative mutation of the collection.
type ChangeEvent struct {
	Type         ChangeType `json:"type"`
	MedicationID string     `json:"medication_id,omitempty"`
	Status       Status     `json:"status,omitempty"`
	At           time.Time  `json:"at"`
}
