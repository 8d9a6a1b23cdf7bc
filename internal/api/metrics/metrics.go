// Package metrics defines and registers all custom Prometheus metrics for the
// Fixora booking API. It is the single source of truth for metric names,
// labels, and help strings; metrics register themselves with the default
// registry on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fixora"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: "user" or "admin" (admin only via the elevation secret)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed user registrations, by resulting role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts that reached the password check.
// Label:
//   - result: "success" or "failure" (unknown email and wrong password are
//     indistinguishable here, matching the API's generic error)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - category: the booked service's category ("electrician", "ac")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by service category.",
	},
	[]string{"category"},
)

// BookingStatusChangesTotal counts admin status changes that actually changed
// the stored value.
// Label:
//   - status: the new status applied ("confirmed", "completed", "cancelled", "pending")
var BookingStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_changes_total",
		Help:      "Total number of booking status changes, by new status.",
	},
	[]string{"status"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts notifications handed to the mail transport
// successfully.
// Label:
//   - kind: "booking_confirmation", "status_update", or "contact"
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications delivered to the mail transport.",
	},
	[]string{"kind"},
)

// NotificationsFailedTotal counts notifications the transport rejected. These
// are dropped, never retried.
// Label:
//   - kind: as above
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notifications that failed to send (dropped).",
	},
	[]string{"kind"},
)

// NotificationsDroppedTotal counts notifications discarded before dispatch
// because a worker queue was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped due to a full dispatch queue.",
	},
)

// NotifyQueueDepth tracks the current number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotifyQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notify_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
