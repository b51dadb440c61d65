// Package metrics defines and registers all custom Prometheus metrics for the
// medication reminder API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// through promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

const namespace = "medreminder"

// ── Medication metrics ────────────────────────────────────────────────────────

// ChangeEventsTotal counts committed mutations of the medication collection.
// Label:
//   - type: "added", "status_updated", "removed" or "refreshed"
var ChangeEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "change_events_total",
		Help:      "Total number of committed medication changes, by change type.",
	},
	[]string{"type"},
)

// StatusUpdatesTotal counts status writes.
// Label:
//   - status: the status written ("Pending", "Taken", "Missed")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of medication status updates, by new status.",
	},
	[]string{"status"},
)

// Medications tracks the current size of the collection per status.
// Label:
//   - status: "Pending", "Taken" or "Missed"
var Medications = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "medications",
		Help:      "Current number of medication records, by status.",
	},
	[]string{"status"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-in and sign-up attempts.
// Labels:
//   - op: "signin" or "signup"
//   - result: "ok", "invalid_credentials", "user_exists", "invalid" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by operation and result.",
	},
	[]string{"op", "result"},
)

// gaugeMu serialises summary reads with the gauge writes that follow them, so
// an older snapshot can never be written after a newer one.
var gaugeMu sync.Mutex

// ChangeListener returns a change-event listener that keeps the counters and
// the per-status gauge current. summary is re-read on every event.
func ChangeListener(summary func(ctx context.Context) (domain.Summary, error)) func(context.Context, domain.ChangeEvent) {
	return func(ctx context.Context, event domain.ChangeEvent) {
		ChangeEventsTotal.WithLabelValues(string(event.Type)).Inc()
		if event.Type == domain.ChangeStatusUpdated {
			StatusUpdatesTotal.WithLabelValues(string(event.Status)).Inc()
		}

		gaugeMu.Lock()
		defer gaugeMu.Unlock()

		s, err := summary(ctx)
		if err != nil {
			return
		}
		Medications.WithLabelValues(string(domain.StatusPending)).Set(float64(s.Pending))
		Medications.WithLabelValues(string(domain.StatusTaken)).Set(float64(s.Taken))
		Medications.WithLabelValues(string(domain.StatusMissed)).Set(float64(s.Missed))
	}
}
