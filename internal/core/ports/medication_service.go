package ports

import (
	"context"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// MedicationDraft is a medication minus the store-assigned fields.
type MedicationDraft struct {
	Name      string
	Dosage    string
	Frequency int
	Times     []string
	// Days defaults to every weekday when nil.
	Days           *domain.Weekdays
	IdempotencyKey string
}

// StoreState is the reactive loading/error view of the medication store.
type StoreState struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// MedicationService is the surface the transport layer consumes.
type MedicationService interface {
	Add(ctx context.Context, draft MedicationDraft) (domain.Medication, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Medication, error)
	Remove(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Medication, bool, error)
	List(ctx context.Context) ([]domain.Medication, error)
	ListByDate(ctx context.Context, date string) ([]domain.Medication, error)
	Refresh(ctx context.Context) error
	MarkerDates(ctx context.Context) (map[string]domain.Marker, error)
	NextPending(ctx context.Context) (domain.Medication, bool, error)
	Summary(ctx context.Context) (domain.Summary, error)
	State() StoreState
}
