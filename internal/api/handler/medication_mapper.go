package handler

import (
	"github.com/medtrack/medication-reminder/internal/core/domain"
	"github.com/medtrack/medication-reminder/internal/core/ports"
)

// --- HTTP request → service input ---

func toDraft(r createMedicationRequest, idempotencyKey string) ports.MedicationDraft {
	d := ports.MedicationDraft{
		Name:           r.Name,
		Dosage:         r.Dosage,
		Frequency:      r.Frequency,
		Times:          r.Times,
		IdempotencyKey: idempotencyKey,
	}
	if r.Days != nil {
		d.Days = &domain.Weekdays{
			Monday:    r.Days.Monday,
			Tuesday:   r.Days.Tuesday,
			Wednesday: r.Days.Wednesday,
			Thursday:  r.Days.Thursday,
			Friday:    r.Days.Friday,
			Saturday:  r.Days.Saturday,
			Sunday:    r.Days.Sunday,
		}
	}
	return d
}

// --- Service result → HTTP response ---

func toMedicationResponse(m domain.Medication) medicationResponse {
	return medicationResponse{
		Medication: m,
		Links: medicationLinks{
			Self:   "/v1/medications/" + m.ID,
			Status: "/v1/medications/" + m.ID + "/status",
		},
	}
}

func toListResponse(meds []domain.Medication, state ports.StoreState) listMedicationsResponse {
	items := make([]medicationResponse, len(meds))
	for i, m := range meds {
		items[i] = toMedicationResponse(m)
	}
	return listMedicationsResponse{Data: items, Loading: state.Loading, Error: state.Error}
}
