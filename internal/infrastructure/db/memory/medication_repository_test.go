package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

func seedRepo() *MedicationRepository {
	return NewMedicationRepository([]domain.Medication{
		{ID: "1", Name: "A", Date: "2024-05-01", Status: domain.StatusPending, Times: []string{"08:00"}},
		{ID: "2", Name: "B", Date: "2024-05-02", Status: domain.StatusTaken, Times: []string{"09:00"}},
	})
}

func TestMedicationRepository_CreateAppends(t *testing.T) {
	r := seedRepo()
	ctx := context.Background()

	if err := r.Create(ctx, domain.Medication{ID: "3", Date: "2024-05-01"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, domain.Medication{ID: "3"}); err == nil {
		t.Fatalf("expected duplicate id to be rejected")
	}

	meds, _ := r.List(ctx)
	if len(meds) != 3 || meds[2].ID != "3" {
		t.Fatalf("unexpected order: %+v", meds)
	}

	byDate, _ := r.ListByDate(ctx, "2024-05-01")
	if len(byDate) != 2 || byDate[0].ID != "1" || byDate[1].ID != "3" {
		t.Fatalf("unexpected by-date result: %+v", byDate)
	}
}

func TestMedicationRepository_ReturnsCopies(t *testing.T) {
	r := seedRepo()
	ctx := context.Background()

	meds, _ := r.List(ctx)
	meds[0].Times[0] = "23:59"
	meds[0].Status = domain.StatusMissed

	again, _ := r.FindByID(ctx, "1")
	if again.Times[0] != "08:00" || again.Status != domain.StatusPending {
		t.Fatalf("stored record was mutated through a returned copy: %+v", again)
	}
}

func TestMedicationRepository_UpdateStatusAndDelete(t *testing.T) {
	r := seedRepo()
	ctx := context.Background()

	m, err := r.UpdateStatus(ctx, "1", domain.StatusTaken)
	if err != nil || m.Status != domain.StatusTaken || m.Name != "A" {
		t.Fatalf("unexpected update result: %+v %v", m, err)
	}
	if _, err := r.UpdateStatus(ctx, "x", domain.StatusTaken); !errors.Is(err, domain.ErrMedicationNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := r.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(ctx, "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := r.FindByID(ctx, "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMedicationRepository_IdempotencyKey(t *testing.T) {
	r := seedRepo()
	ctx := context.Background()

	if _, err := r.FindByIdempotencyKey(ctx, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("empty key should never match, got %v", err)
	}
	if err := r.Create(ctx, domain.Medication{ID: "3", IdempotencyKey: "k"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	m, err := r.FindByIdempotencyKey(ctx, "k")
	if err != nil || m.ID != "3" {
		t.Fatalf("unexpected result: %+v %v", m, err)
	}
}

func TestMedicationRepository_ReplaceAll(t *testing.T) {
	r := seedRepo()
	ctx := context.Background()

	if err := r.ReplaceAll(ctx, []domain.Medication{{ID: "9"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	meds, _ := r.List(ctx)
	if len(meds) != 1 || meds[0].ID != "9" {
		t.Fatalf("unexpected collection: %+v", meds)
	}
}

func TestMedicationRepository_ConcurrentWrites(t *testing.T) {
	r := NewMedicationRepository(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Create(ctx, domain.Medication{ID: string(rune('A' + i))})
			_, _ = r.List(ctx)
		}(i)
	}
	wg.Wait()

	meds, _ := r.List(ctx)
	if len(meds) != 50 {
		t.Fatalf("expected 50 records, got %d", len(meds))
	}
}

func TestAuthRepository(t *testing.T) {
	r := NewAuthRepository()
	ctx := context.Background()

	u := domain.User{ID: "u1", Name: "John", Email: "user@example.com", PasswordHash: "h"}
	if err := r.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, domain.User{ID: "u2", Email: "user@example.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	got, err := r.FindByEmail(ctx, "user@example.com")
	if err != nil || got.ID != "u1" || got.PasswordHash != "h" {
		t.Fatalf("unexpected lookup: %+v %v", got, err)
	}
	if _, err := r.FindByEmail(ctx, "User@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("email match must be exact, got %v", err)
	}
	if got, err := r.FindByID(ctx, "u1"); err != nil || got.Email != "user@example.com" {
		t.Fatalf("unexpected id lookup: %+v %v", got, err)
	}
}

func TestActionGuard(t *testing.T) {
	g := NewActionGuard()
	ctx := context.Background()

	release, err := g.Acquire(ctx, "status:1")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if _, err := g.Acquire(ctx, "status:1"); !errors.Is(err, domain.ErrActionInFlight) {
		t.Fatalf("expected ErrActionInFlight, got %v", err)
	}
	other, err := g.Acquire(ctx, "status:2")
	if err != nil {
		t.Fatalf("distinct keys must not conflict: %v", err)
	}
	other()

	release()
	release()

	again, err := g.Acquire(ctx, "status:1")
	if err != nil {
		t.Fatalf("expected key free after release: %v", err)
	}
	again()
}
