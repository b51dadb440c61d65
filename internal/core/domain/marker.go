package domain

// MarkerKind is the category a calendar day is painted with.
type MarkerKind string

const (
	MarkerMissed  MarkerKind = "missed"
	MarkerTaken   MarkerKind = "taken"
	MarkerPending MarkerKind = "pending"
)

var markerColors = map[MarkerKind]string{
	MarkerMissed:  "#F44336",
	MarkerTaken:   "#4CAF50",
	MarkerPending: "#FFC107",
}

// Marker is the per-date descriptor consumed by a calendar view.
type Marker struct {
	Marked   bool       `json:"marked"`
	DotColor string     `json:"dot_color"`
	Kind     MarkerKind `json:"kind"`
}

// NewMarker builds the marker for kind with its display color.
func NewMarker(kind MarkerKind) Marker {
	return Marker{Marked: true, DotColor: markerColors[kind], Kind: kind}
}

// MarkerDates groups meds by date and picks one marker per date:
// any missed dose marks the day missed, otherwise all taken marks it taken,
// otherwise it is pending. The result is always computed from scratch.
func MarkerDates(meds []Medication) map[string]Marker {
	type bucket struct {
		missed   bool
		allTaken bool
	}

	buckets := make(map[string]*bucket)
	for _, m := range meds {
		b, ok := buckets[m.Date]
		if !ok {
			b = &bucket{allTaken: true}
			buckets[m.Date] = b
		}
		if m.Status == StatusMissed {
			b.missed = true
		}
		if m.Status != StatusTaken {
			b.allTaken = false
		}
	}

	out := make(map[string]Marker, len(buckets))
	for date, b := range buckets {
		switch {
		case b.missed:
			out[date] = NewMarker(MarkerMissed)
		case b.allTaken:
			out[date] = NewMarker(MarkerTaken)
		default:
			out[date] = NewMarker(MarkerPending)
		}
	}
	return out
}

// Summary is the dashboard view of the whole collection.
type Summary struct {
	Total    int     `json:"total"`
	Pending  int     `json:"pending"`
	Taken    int     `json:"taken"`
	Missed   int     `json:"missed"`
	Progress float64 `json:"progress"`
}

// Summarize counts meds by status; Progress is the taken share in percent.
func Summarize(meds []Medication) Summary {
	var s Summary
	for _, m := range meds {
		switch m.Status {
		case StatusPending:
			s.Pending++
		case StatusTaken:
			s.Taken++
		case StatusMissed:
			s.Missed++
		}
	}
	s.Total = len(meds)
	if s.Total > 0 {
		s.Progress = float64(s.Taken) / float64(s.Total) * 100
	}
	return s
}

// NextPending returns the first pending record in collection order.
func NextPending(meds []Medication) (Medication, bool) {
	for _, m := range meds {
		if m.Status == StatusPending {
			return m, true
		}
	}
	return Medication{}, false
}
