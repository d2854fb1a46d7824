// Package metrics defines and registers all custom Prometheus metrics for the
// workforce API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workforce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AccountsRegisteredTotal counts successful self-registrations.
var AccountsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts created through self-registration.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "unverified"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Request metrics ───────────────────────────────────────────────────────────

// RequestsSubmittedTotal counts submitted item requests.
// Label:
//   - type: the request type as supplied by the requester (e.g. "equipment")
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of item requests submitted, by request type.",
	},
	[]string{"type"},
)

// RequestsResolvedTotal counts resolved item requests.
// Label:
//   - status: "Approved" or "Rejected"
var RequestsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_resolved_total",
		Help:      "Total number of item requests resolved, by final status.",
	},
	[]string{"status"},
)

// ── Snapshot metrics ──────────────────────────────────────────────────────────

// SnapshotSavesTotal counts successful dataset snapshot writes.
var SnapshotSavesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_saves_total",
		Help:      "Total number of dataset snapshots written to the blob backend.",
	},
)

// SnapshotSaveErrorsTotal counts failed dataset snapshot writes.
var SnapshotSaveErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_save_errors_total",
		Help:      "Total number of dataset snapshot writes that failed.",
	},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsProcessedTotal counts notifications that completed processing.
// Label:
//   - kind: "verification" or "request_resolved"
var NotificationsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_processed_total",
		Help:      "Total number of notifications successfully processed, by kind.",
	},
	[]string{"kind"},
)

// NotificationsErrorsTotal counts notifications that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "unknown_kind", "mark_pending_failed")
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notifications that failed processing.",
	},
	[]string{"reason"},
)

// NotificationQueueDepth tracks notifications waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
