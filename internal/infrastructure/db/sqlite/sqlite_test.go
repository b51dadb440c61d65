package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// one connection so every query sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func sampleMedication(id, date string) domain.Medication {
	return domain.Medication{
		ID:        id,
		Name:      "Med " + id,
		Dosage:    "10mg",
		Frequency: 2,
		Times:     []string{"08:00", "20:00"},
		Days:      domain.Weekdays{Monday: true, Friday: true},
		Status:    domain.StatusPending,
		Date:      date,
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestMedicationRepository_RoundTrip(t *testing.T) {
	r := NewMedicationRepository(openTestDB(t))
	ctx := context.Background()

	want := sampleMedication("a", "2024-05-01")
	want.IdempotencyKey = "key-a"
	if err := r.Create(ctx, want); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.FindByID(ctx, "a")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Name != want.Name || got.Dosage != want.Dosage || got.Frequency != want.Frequency ||
		got.Status != want.Status || got.Date != want.Date || got.IdempotencyKey != want.IdempotencyKey {
		t.Fatalf("scalar fields differ: %+v vs %+v", got, want)
	}
	if len(got.Times) != 2 || got.Times[1] != "20:00" {
		t.Fatalf("times differ: %v", got.Times)
	}
	if got.Days != want.Days {
		t.Fatalf("days differ: %+v", got.Days)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created_at differs: %v", got.CreatedAt)
	}

	byKey, err := r.FindByIdempotencyKey(ctx, "key-a")
	if err != nil || byKey.ID != "a" {
		t.Fatalf("idempotency lookup: %+v %v", byKey, err)
	}
	if _, err := r.FindByIdempotencyKey(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMedicationRepository_InsertionOrder(t *testing.T) {
	r := NewMedicationRepository(openTestDB(t))
	ctx := context.Background()

	for _, id := range []string{"z", "a", "m"} {
		if err := r.Create(ctx, sampleMedication(id, "2024-05-01")); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	if err := r.Create(ctx, sampleMedication("other", "2024-05-02")); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 || all[0].ID != "z" || all[1].ID != "a" || all[2].ID != "m" {
		t.Fatalf("unexpected order: %v", all)
	}

	day, err := r.ListByDate(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(day) != 3 || day[0].ID != "z" {
		t.Fatalf("unexpected by-date result: %v", day)
	}
}

func TestMedicationRepository_UpdateStatusAndDelete(t *testing.T) {
	r := NewMedicationRepository(openTestDB(t))
	ctx := context.Background()

	if err := r.Create(ctx, sampleMedication("a", "2024-05-01")); err != nil {
		t.Fatalf("create: %v", err)
	}

	m, err := r.UpdateStatus(ctx, "a", domain.StatusMissed)
	if err != nil || m.Status != domain.StatusMissed || m.Name != "Med a" {
		t.Fatalf("unexpected update: %+v %v", m, err)
	}
	if _, err := r.UpdateStatus(ctx, "missing", domain.StatusTaken); !errors.Is(err, domain.ErrMedicationNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := r.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := r.Delete(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMedicationRepository_ReplaceAll(t *testing.T) {
	r := NewMedicationRepository(openTestDB(t))
	ctx := context.Background()

	if err := r.Create(ctx, sampleMedication("old", "2024-04-01")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.ReplaceAll(ctx, []domain.Medication{
		sampleMedication("1", "2024-05-01"),
		sampleMedication("2", "2024-05-01"),
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	all, _ := r.List(ctx)
	if len(all) != 2 || all[0].ID != "1" || all[1].ID != "2" {
		t.Fatalf("unexpected collection: %v", all)
	}

	// a failing batch leaves the previous collection in place
	dup := sampleMedication("x", "2024-05-01")
	if err := r.ReplaceAll(ctx, []domain.Medication{dup, dup}); err == nil {
		t.Fatalf("expected duplicate ids to fail")
	}
	all, _ = r.List(ctx)
	if len(all) != 2 {
		t.Fatalf("collection changed after failed replace: %v", all)
	}
}

func TestAuthRepository(t *testing.T) {
	r := NewAuthRepository(openTestDB(t))
	ctx := context.Background()

	u := domain.User{ID: "u1", Name: "John Doe", Email: "user@example.com", PasswordHash: "hash", CreatedAt: time.Now()}
	if err := r.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, domain.User{ID: "u2", Name: "X", Email: "user@example.com", PasswordHash: "h"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	got, err := r.FindByEmail(ctx, "user@example.com")
	if err != nil || got.ID != "u1" || got.PasswordHash != "hash" {
		t.Fatalf("unexpected lookup: %+v %v", got, err)
	}
	if _, err := r.FindByID(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthRepository_IDCollisionIsNotUserExists(t *testing.T) {
	r := NewAuthRepository(openTestDB(t))
	ctx := context.Background()

	if err := r.Create(ctx, domain.User{ID: "u1", Name: "John Doe", Email: "user@example.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := r.Create(ctx, domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", PasswordHash: "h"})
	if err == nil {
		t.Fatalf("expected primary key violation")
	}
	if errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("id collision must not be reported as ErrUserExists: %v", err)
	}
	if _, err := r.FindByEmail(ctx, "alice@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("colliding row must not be stored, got %v", err)
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "meds.db")

	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	r := NewMedicationRepository(db)
	if err := r.Create(context.Background(), sampleMedication("a", "2024-05-01")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := r.FindByID(context.Background(), "a"); err != nil {
		t.Fatalf("find: %v", err)
	}
}
