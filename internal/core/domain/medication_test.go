package domain

import (
	"errors"
	"testing"
	"time"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusTaken, StatusMissed} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"", "pending", "Skipped"} {
		if s.Valid() {
			t.Fatalf("%q should be invalid", s)
		}
	}
	if StatusPending.Resolved() || !StatusTaken.Resolved() || !StatusMissed.Resolved() {
		t.Fatalf("unexpected Resolved results")
	}
}

func TestValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	invalid := []string{"", "8:30", "24:00", "12:60", "0830", "08:30:00", "ab:cd"}

	for _, s := range valid {
		if !ValidTimeOfDay(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	for _, s := range invalid {
		if ValidTimeOfDay(s) {
			t.Fatalf("%q should be invalid", s)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-02-29") {
		t.Fatalf("leap day should be valid")
	}
	for _, s := range []string{"", "2023-02-29", "2024-5-1", "01/05/2024"} {
		if ValidDate(s) {
			t.Fatalf("%q should be invalid", s)
		}
	}
}

func TestWeekdaysIncludes(t *testing.T) {
	w := EveryDay()
	w.Sunday = false

	if !w.Includes(time.Monday) || !w.Includes(time.Saturday) {
		t.Fatalf("expected weekdays and Saturday included")
	}
	if w.Includes(time.Sunday) {
		t.Fatalf("expected Sunday excluded")
	}
}

func TestMedicationClone(t *testing.T) {
	m := Medication{ID: "1", Times: []string{"08:00"}}
	c := m.Clone()
	c.Times[0] = "09:00"

	if m.Times[0] != "08:00" {
		t.Fatalf("clone shares Times with the original")
	}
}

func TestInvalidWrapsValidation(t *testing.T) {
	err := Invalid("time %q must be HH:MM", "8am")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !errors.Is(ErrMedicationNotFound, ErrNotFound) || !errors.Is(ErrNoSession, ErrNotFound) {
		t.Fatalf("not-found sentinels should wrap ErrNotFound")
	}
}
