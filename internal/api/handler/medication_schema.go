package handler

import "github.com/medtrack/medication-reminder/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type daysRequest struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

type createMedicationRequest struct {
	Name      string       `json:"name"      validate:"required"`
	Dosage    string       `json:"dosage"`
	Frequency int          `json:"frequency" validate:"gte=0"`
	Times     []string     `json:"times"     validate:"required,min=1,max=5,dive,datetime=15:04"`
	Days      *daysRequest `json:"days"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Taken Missed"`
}

type medicationLinks struct {
	Self   string `json:"self"`
	Status string `json:"status"`
}

type medicationResponse struct {
	domain.Medication
	Links medicationLinks `json:"_links"`
}

type listMedicationsResponse struct {
	Data    []medicationResponse `json:"data"`
	Loading bool                 `json:"loading"`
	Error   string               `json:"error,omitempty"`
}

type nextMedicationResponse struct {
	Next *medicationResponse `json:"next"`
}

type markersResponse struct {
	Markers map[string]domain.Marker `json:"markers"`
}
