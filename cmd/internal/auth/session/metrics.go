package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels are a small closed set so dashboards stay stable.
const (
	resultOK         = "ok"
	resultInvalid    = "invalid"
	resultConflict   = "conflict"
	resultValidation = "validation"
	resultError      = "error"
)

var (
	metricRegistrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskhub",
		Subsystem: "auth",
		Name:      "registrations_total",
		Help:      "Registration attempts by result.",
	}, []string{"result"})

	metricLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskhub",
		Subsystem: "auth",
		Name:      "logins_total",
		Help:      "Login attempts by result.",
	}, []string{"result"})

	metricRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskhub",
		Subsystem: "auth",
		Name:      "refreshes_total",
		Help:      "Refresh rotations by result.",
	}, []string{"result"})

	metricLogouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskhub",
		Subsystem: "auth",
		Name:      "logouts_total",
		Help:      "Logout calls by result.",
	}, []string{"result"})

	metricSweptTokens = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taskhub",
		Subsystem: "auth",
		Name:      "swept_refresh_tokens_total",
		Help:      "Expired refresh-token records removed by the sweeper.",
	})
)
