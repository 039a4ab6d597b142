// Package metrics defines all custom Prometheus metrics for the forum client.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forumclient"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts credential exchanges.
// Label:
//   - result: "ok", "invalid_credentials", "banned", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts startup restores of the persisted session blob.
// Label:
//   - result: "ok" (blob decoded), "none" (no blob), or "purged" (unreadable blob removed)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

// BanPollsTotal counts iterations of the background ban check.
// Label:
//   - result: "clear" (not banned), "banned" (session torn down), or "error" (transient, swallowed)
var BanPollsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ban_polls_total",
		Help:      "Total number of ban poll iterations, by result.",
	},
	[]string{"result"},
)

// ── Voting metrics ────────────────────────────────────────────────────────────

// VotesCastTotal counts votes accepted by the backend.
// Labels:
//   - target: "question" or "answer"
//   - value: "up" or "down"
var VotesCastTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of votes accepted by the backend.",
	},
	[]string{"target", "value"},
)

// VotesRejectedTotal counts votes rejected before or by the backend.
// Label:
//   - reason: "unauthenticated", "invalid_target", "self_vote", "duplicate",
//     "invalid_value", "in_flight", or "backend"
var VotesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_rejected_total",
		Help:      "Total number of rejected vote attempts, by reason.",
	},
	[]string{"reason"},
)

// AcceptancesTotal counts answer acceptances confirmed by the backend.
var AcceptancesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "acceptances_total",
		Help:      "Total number of answers accepted.",
	},
)

// ── Transport metrics ─────────────────────────────────────────────────────────

// RequestDuration measures one REST round trip from request build to response
// decode.
// Labels:
//   - method: HTTP method
//   - route: path template without identifiers (e.g. "/questions/{id}")
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend REST calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// UploadsTotal counts image uploads.
// Label:
//   - result: "ok", "too_large", or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image upload attempts, by result.",
	},
	[]string{"result"},
)
