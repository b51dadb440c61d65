package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medtrack/medication-reminder/internal/core/domain"
	"github.com/medtrack/medication-reminder/internal/core/ports"
)

// MedicationOption customises a MedicationService.
type MedicationOption func(*MedicationService)

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) MedicationOption {
	return func(s *MedicationService) { s.now = now }
}

// WithLocation sets the time zone that decides what "today" is.
func WithLocation(loc *time.Location) MedicationOption {
	return func(s *MedicationService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLatency delays every mutator to mimic a network round-trip.
func WithLatency(d time.Duration) MedicationOption {
	return func(s *MedicationService) { s.latency = d }
}

// MedicationService owns the medication collection through its repository and
// derives the per-date, calendar and next-dose views from it.
type MedicationService struct {
	repo    ports.MedicationRepository
	guard   ports.ActionGuard
	events  ports.ChangePublisher
	seed    []domain.Medication
	logger  zerolog.Logger
	now     func() time.Time
	loc     *time.Location
	latency time.Duration

	inFlight atomic.Int32
	mu       sync.RWMutex
	lastErr  string
}

func NewMedicationService(
	repo ports.MedicationRepository,
	guard ports.ActionGuard,
	events ports.ChangePublisher,
	seed []domain.Medication,
	logger zerolog.Logger,
	opts ...MedicationOption,
) *MedicationService {
	s := &MedicationService{
		repo:   repo,
		guard:  guard,
		events: events,
		seed:   cloneAll(seed),
		logger: logger,
		now:    time.Now,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the calendar date new records are stamped with.
func (s *MedicationService) Today() string {
	return s.now().In(s.loc).Format(domain.DateLayout)
}

// Add validates draft, stamps it Pending for today and appends it. A draft
// whose idempotency key was already stored returns the earlier record.
func (s *MedicationService) Add(ctx context.Context, draft ports.MedicationDraft) (domain.Medication, error) {
	med, err := s.newMedication(draft)
	if err != nil {
		return domain.Medication{}, err
	}

	action := "add:" + med.Name
	if med.IdempotencyKey != "" {
		action = "add:" + med.IdempotencyKey
	}

	replay := false
	err = s.mutate(ctx, action, func(ctx context.Context) error {
		if med.IdempotencyKey != "" {
			existing, err := s.repo.FindByIdempotencyKey(ctx, med.IdempotencyKey)
			if err == nil {
				med, replay = existing, true
				return nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return storeErr("find idempotency key", err)
			}
		}
		if err := s.repo.Create(ctx, med); err != nil {
			return storeErr("create medication", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", med.Name).Msg("failed to add medication")
		return domain.Medication{}, err
	}

	if replay {
		s.logger.Info().Str("idempotency_key", med.IdempotencyKey).Str("id", med.ID).Msg("idempotent replay")
		return med.Clone(), nil
	}

	s.logger.Info().Str("id", med.ID).Str("name", med.Name).Str("date", med.Date).Msg("medication added")
	s.publish(domain.ChangeAdded, med.ID, med.Status)
	return med.Clone(), nil
}

// UpdateStatus overwrites the status of one record. Any valid status may be
// written; the last write wins.
func (s *MedicationService) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Medication, error) {
	if !status.Valid() {
		return domain.Medication{}, domain.Invalid("status must be one of Pending, Taken, Missed")
	}

	var updated domain.Medication
	err := s.mutate(ctx, "status:"+id, func(ctx context.Context) error {
		m, err := s.repo.UpdateStatus(ctx, id, status)
		if err != nil {
			return storeErr("update status", err)
		}
		updated = m
		return nil
	})
	if err != nil {
		return domain.Medication{}, err
	}

	s.logger.Info().Str("id", id).Str("status", string(status)).Msg("medication status updated")
	s.publish(domain.ChangeStatusUpdated, id, status)
	return updated, nil
}

// Remove deletes the record permanently.
func (s *MedicationService) Remove(ctx context.Context, id string) error {
	err := s.mutate(ctx, "remove:"+id, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, id); err != nil {
			return storeErr("delete medication", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("medication removed")
	s.publish(domain.ChangeRemoved, id, "")
	return nil
}

// Refresh repopulates the collection from the seed data.
func (s *MedicationService) Refresh(ctx context.Context) error {
	err := s.mutate(ctx, "refresh", func(ctx context.Context) error {
		if err := s.repo.ReplaceAll(ctx, cloneAll(s.seed)); err != nil {
			return storeErr("replace collection", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load medications")
		return err
	}

	s.logger.Debug().Int("count", len(s.seed)).Msg("medications refreshed")
	s.publish(domain.ChangeRefreshed, "", "")
	return nil
}

// GetByID returns the record and true, or false when no record has id.
func (s *MedicationService) GetByID(ctx context.Context, id string) (domain.Medication, bool, error) {
	m, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Medication{}, false, nil
	}
	if err != nil {
		return domain.Medication{}, false, storeErr("find medication", err)
	}
	return m, true, nil
}

func (s *MedicationService) List(ctx context.Context) ([]domain.Medication, error) {
	meds, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr("list medications", err)
	}
	return meds, nil
}

// ListByDate returns the records stamped with date, in collection order.
func (s *MedicationService) ListByDate(ctx context.Context, date string) ([]domain.Medication, error) {
	if !domain.ValidDate(date) {
		return nil, domain.Invalid("date must be YYYY-MM-DD")
	}
	meds, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, storeErr("list medications by date", err)
	}
	return meds, nil
}

// MarkerDates recomputes the calendar markers from the current collection.
func (s *MedicationService) MarkerDates(ctx context.Context) (map[string]domain.Marker, error) {
	meds, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.MarkerDates(meds), nil
}

// NextPending returns the first pending record by insertion order.
func (s *MedicationService) NextPending(ctx context.Context) (domain.Medication, bool, error) {
	meds, err := s.List(ctx)
	if err != nil {
		return domain.Medication{}, false, err
	}
	m, ok := domain.NextPending(meds)
	return m, ok, nil
}

func (s *MedicationService) Summary(ctx context.Context) (domain.Summary, error) {
	meds, err := s.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(meds), nil
}

// State reports whether a mutator is running and the last mutator failure.
func (s *MedicationService) State() ports.StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ports.StoreState{Loading: s.inFlight.Load() > 0, Error: s.lastErr}
}

func (s *MedicationService) newMedication(d ports.MedicationDraft) (domain.Medication, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return domain.Medication{}, domain.Invalid("name is required")
	}
	if len(d.Times) == 0 {
		return domain.Medication{}, domain.Invalid("at least one time is required")
	}
	if len(d.Times) > domain.MaxTimes {
		return domain.Medication{}, domain.Invalid("at most %d times are allowed", domain.MaxTimes)
	}
	for _, t := range d.Times {
		if !domain.ValidTimeOfDay(t) {
			return domain.Medication{}, domain.Invalid("time %q must be HH:MM", t)
		}
	}
	if d.Frequency < 0 {
		return domain.Medication{}, domain.Invalid("frequency must be positive")
	}

	frequency := d.Frequency
	if frequency == 0 {
		frequency = 1
	}
	dosage := strings.TrimSpace(d.Dosage)
	if dosage == "" {
		dosage = domain.DefaultDosage
	}
	days := domain.EveryDay()
	if d.Days != nil {
		days = *d.Days
	}

	now := s.now()
	return domain.Medication{
		ID:             uuid.NewString(),
		Name:           name,
		Dosage:         dosage,
		Frequency:      frequency,
		Times:          append([]string(nil), d.Times...),
		Days:           days,
		Status:         domain.StatusPending,
		Date:           now.In(s.loc).Format(domain.DateLayout),
		IdempotencyKey: strings.TrimSpace(d.IdempotencyKey),
		CreatedAt:      now.UTC(),
	}, nil
}

// mutate runs fn under the in-flight guard for action and records the
// outcome in the store state.
func (s *MedicationService) mutate(ctx context.Context, action string, fn func(context.Context) error) error {
	release, err := s.guard.Acquire(ctx, action)
	if err != nil {
		if !errors.Is(err, domain.ErrActionInFlight) {
			err = storeErr("acquire guard", err)
		}
		return err
	}
	defer release()

	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	if err := s.wait(ctx); err != nil {
		s.record(err)
		return err
	}

	err = fn(ctx)
	s.record(err)
	return err
}

func (s *MedicationService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *MedicationService) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.lastErr = ""
		return
	}
	s.lastErr = err.Error()
}

func (s *MedicationService) publish(t domain.ChangeType, id string, status domain.Status) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.ChangeEvent{
		Type:         t,
		MedicationID: id,
		Status:       status,
		At:           s.now().UTC(),
	})
}

// storeErr passes domain errors through and classifies anything else as a
// store failure.
func storeErr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrStore) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
}

func cloneAll(meds []domain.Medication) []domain.Medication {
	out := make([]domain.Medication, len(meds))
	for i, m := range meds {
		out[i] = m.Clone()
	}
	return out
}
