package domain

import (
	"time"
)

// Status represents the state of a single dose record.
type Status string

const (
	StatusPending Status = "Pending"
	StatusTaken   Status = "Taken"
	StatusMissed  Status = "Missed"
)

const (
	// DateLayout is the calendar date format stamped on every record.
	DateLayout = "2006-01-02"
	// TimeOfDayLayout is the HH:MM 24-hour format used for schedule times.
	TimeOfDayLayout = "15:04"

	DefaultDosage = "unspecified"
	MaxTimes      = 5
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusTaken, StatusMissed:
		return true
	}
	return false
}

// Resolved reports whether the dose has been acted on.
func (s Status) Resolved() bool {
	return s == StatusTaken || s == StatusMissed
}

// Weekdays holds the schedule flags. They are stored with the record but the
// by-date view does not project recurrence from them.
type Weekdays struct {
	Monday    bool `json:"monday" bson:"monday"`
	Tuesday   bool `json:"tuesday" bson:"tuesday"`
	Wednesday bool `json:"wednesday" bson:"wednesday"`
	Thursday  bool `json:"thursday" bson:"thursday"`
	Friday    bool `json:"friday" bson:"friday"`
	Saturday  bool `json:"saturday" bson:"saturday"`
	Sunday    bool `json:"sunday" bson:"sunday"`
}

// EveryDay returns a schedule with every weekday enabled.
func EveryDay() Weekdays {
	return Weekdays{true, true, true, true, true, true, true}
}

// Includes reports whether the schedule covers the given weekday. Nothing
// expands schedules into dated doses yet; recurring reminders will filter on it.
func (w Weekdays) Includes(d time.Weekday) bool {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	}
	return false
}

// Medication is a dose record scoped to one calendar date.
type Medication struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	Dosage         string    `json:"dosage" bson:"dosage"`
	Frequency      int       `json:"frequency" bson:"frequency"`
	Times          []string  `json:"times" bson:"times"`
	Days           Weekdays  `json:"days" bson:"days"`
	Status         Status    `json:"status" bson:"status"`
	Date           string    `json:"date" bson:"date"`
	IdempotencyKey string    `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// Clone returns a deep copy so callers never share the Times slice with the store.
func (m Medication) Clone() Medication {
	m.Times = append([]string(nil), m.Times...)
	return m
}

// ValidTimeOfDay reports whether s is a HH:MM 24-hour time.
func ValidTimeOfDay(s string) bool {
	if len(s) != len(TimeOfDayLayout) {
		return false
	}
	_, err := time.Parse(TimeOfDayLayout, s)
	return err == nil
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
