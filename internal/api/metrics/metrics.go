// Package metrics defines and registers the custom Prometheus metrics of the
// iSkate admin portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default registry at package init (promauto);
// HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin_portal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", "not_admin" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of operator login attempts, by result.",
	},
	[]string{"result"},
)

// RoleEvaluationDuration measures a full three-role lookup for one user.
var RoleEvaluationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "role_evaluation_duration_seconds",
		Help:      "Duration of evaluating the effective role set of a user.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Moderation metrics ────────────────────────────────────────────────────────

// ModerationActionsTotal counts status and role mutations.
// Labels:
//   - action: "ban", "suspend", "clear", "grant_<role>", "revoke_<role>", "resolve_report"
//   - result: "ok" or "error"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of moderation actions, by action and result.",
	},
	[]string{"action", "result"},
)

// AppToggleTotal counts writes to the application-active flag.
// Label:
//   - result: "ok", "conflict" or "error"
var AppToggleTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "app_toggle_total",
		Help:      "Total number of application-active flag writes, by result.",
	},
	[]string{"result"},
)

// ObserveRoleEvaluation records the time since start.
func ObserveRoleEvaluation(start time.Time) {
	RoleEvaluationDuration.Observe(time.Since(start).Seconds())
}

// Result maps an error to the "ok"/"error" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
