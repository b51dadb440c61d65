package ports

import (
	"context"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// MedicationRepository is the single authoritative medication collection.
// List returns records in insertion order.
type MedicationRepository interface {
	Create(ctx context.Context, m domain.Medication) error
	FindByID(ctx context.Context, id string) (domain.Medication, error)
	FindByIdempotencyKey(ctx context.Context, key string) (domain.Medication, error)
	List(ctx context.Context) ([]domain.Medication, error)
	ListByDate(ctx context.Context, date string) ([]domain.Medication, error)
	// UpdateStatus changes only the status field and returns the updated record.
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Medication, error)
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the whole collection for meds.
	ReplaceAll(ctx context.Context, meds []domain.Medication) error
}

// ActionGuard prevents overlapping invocations of the same logical action.
// Acquire returns domain.ErrActionInFlight when key is already held.
type ActionGuard interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// ChangePublisher receives change events after each committed mutation.
type ChangePublisher interface {
	Publish(event domain.ChangeEvent)
}
