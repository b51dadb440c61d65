package service

import (
	"time"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

// SeedMedications returns the demo collection stamped with date.
func SeedMedications(date string) []domain.Medication {
	weekdays := domain.EveryDay()
	weekdays.Saturday, weekdays.Sunday = false, false

	created := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Medication{
		{
			ID:        "1",
			Name:      "Ibuprofen",
			Dosage:    "200mg",
			Frequency: 3,
			Times:     []string{"08:00", "14:00", "20:00"},
			Days:      domain.EveryDay(),
			Status:    domain.StatusPending,
			Date:      date,
			CreatedAt: created,
		},
		{
			ID:        "2",
			Name:      "Amoxicillin",
			Dosage:    "500mg",
			Frequency: 2,
			Times:     []string{"09:00", "21:00"},
			Days:      domain.EveryDay(),
			Status:    domain.StatusTaken,
			Date:      date,
			CreatedAt: created.Add(time.Second),
		},
		{
			ID:        "3",
			Name:      "Vitamin D",
			Dosage:    "1000 IU",
			Frequency: 1,
			Times:     []string{"10:00"},
			Days:      weekdays,
			Status:    domain.StatusMissed,
			Date:      date,
			CreatedAt: created.Add(2 * time.Second),
		},
	}
}
