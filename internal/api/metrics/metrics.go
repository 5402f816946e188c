// Package metrics defines the custom Prometheus metrics of the carrier
// service. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is first imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carrier"

// Outcome label values for CarrierRequestsTotal.
const (
	OutcomeSuccess = "success" // carrier accepted the request
	OutcomeFailure = "failure" // carrier answered with an error notification
	OutcomeError   = "error"   // transport failure or unreadable reply
)

// ── Carrier round trips ───────────────────────────────────────────────────────

// CarrierRequestsTotal counts carrier operations.
// Labels:
//   - carrier: adapter name (e.g. "fedex")
//   - operation: "rate", "ship", "delete" or "track"
//   - outcome: OutcomeSuccess, OutcomeFailure or OutcomeError
var CarrierRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of carrier operations, by outcome.",
	},
	[]string{"carrier", "operation", "outcome"},
)

// CarrierRequestDuration measures carrier operations end to end, including
// request rendering and reply parsing.
var CarrierRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of carrier operations.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	},
	[]string{"carrier", "operation"},
)

// PayloadsLoggedTotal counts raw exchanges persisted on request.
var PayloadsLoggedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payloads_logged_total",
		Help:      "Total number of raw carrier exchanges stored for diagnostics.",
	},
	[]string{"carrier", "operation"},
)

// ── Shipment records ──────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts labels bought through the service.
// Labels:
//   - carrier: adapter name
//   - service_type: carrier service code (e.g. "GROUND_HOME_DELIVERY")
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by carrier and service type.",
	},
	[]string{"carrier", "service_type"},
)

// ShipmentsCancelledTotal counts successfully voided shipments.
var ShipmentsCancelledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_cancelled_total",
		Help:      "Total number of shipments cancelled, by carrier.",
	},
	[]string{"carrier"},
)

// ── Tracking refresh ──────────────────────────────────────────────────────────

// EventsRecordedTotal counts tracking events written to the event store.
var EventsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_events_recorded_total",
		Help:      "Total number of new tracking events persisted.",
	},
	[]string{"carrier"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (already recorded, skipped) or "miss" (new event)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// RefreshErrorsTotal counts refreshes that failed.
// Label:
//   - reason: "carrier", "persist" or "status_update"
var RefreshErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_refresh_errors_total",
		Help:      "Total number of tracking refreshes that failed.",
	},
	[]string{"reason"},
)

// RefreshQueueDepth tracks the refresh jobs waiting in each worker channel.
var RefreshQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tracking_refresh_queue_depth",
		Help:      "Current number of refresh jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
