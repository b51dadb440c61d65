package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// MedicationRepository keeps the collection in a slice in insertion order.
// Every write builds a new slice and swaps it in, so a failed write leaves
// the previous collection untouched.
type MedicationRepository struct {
	mu   sync.RWMutex
	meds []domain.Medication
}

func NewMedicationRepository(initial []domain.Medication) *MedicationRepository {
	r := &MedicationRepository{}
	r.meds = cloneAll(initial)
	return r
}

func (r *MedicationRepository) Create(_ context.Context, m domain.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		return errors.New("medication id required")
	}
	if r.indexOf(m.ID) >= 0 {
		return errors.New("medication already exists")
	}

	next := make([]domain.Medication, len(r.meds), len(r.meds)+1)
	copy(next, r.meds)
	r.meds = append(next, m.Clone())
	return nil
}

func (r *MedicationRepository) FindByID(_ context.Context, id string) (domain.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Medication{}, domain.ErrMedicationNotFound
	}
	return r.meds[i].Clone(), nil
}

func (r *MedicationRepository) FindByIdempotencyKey(_ context.Context, key string) (domain.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if key == "" {
		return domain.Medication{}, domain.ErrMedicationNotFound
	}
	for _, m := range r.meds {
		if m.IdempotencyKey == key {
			return m.Clone(), nil
		}
	}
	return domain.Medication{}, domain.ErrMedicationNotFound
}

func (r *MedicationRepository) List(_ context.Context) ([]domain.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.meds), nil
}

func (r *MedicationRepository) ListByDate(_ context.Context, date string) ([]domain.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Medication, 0)
	for _, m := range r.meds {
		if m.Date == date {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

func (r *MedicationRepository) UpdateStatus(_ context.Context, id string, status domain.Status) (domain.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Medication{}, domain.ErrMedicationNotFound
	}

	next := slices.Clone(r.meds)
	next[i].Status = status
	r.meds = next
	return next[i].Clone(), nil
}

func (r *MedicationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrMedicationNotFound
	}
	r.meds = slices.Delete(slices.Clone(r.meds), i, i+1)
	return nil
}

func (r *MedicationRepository) ReplaceAll(_ context.Context, meds []domain.Medication) error {
	next := cloneAll(meds)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.meds = next
	return nil
}

func (r *MedicationRepository) indexOf(id string) int {
	return slices.IndexFunc(r.meds, func(m domain.Medication) bool { return m.ID == id })
}

func cloneAll(meds []domain.Medication) []domain.Medication {
	out := make([]domain.Medication, len(meds))
	for i, m := range meds {
		out[i] = m.Clone()
	}
	return out
}
