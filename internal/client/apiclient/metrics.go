package apiclient

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what the client does with its credentials. They are
// registered on the Registerer passed to NewMetrics.
type Metrics struct {
	Requests        *prometheus.CounterVec
	Refreshes       *prometheus.CounterVec
	Retries         prometheus.Counter
	SessionsCleared prometheus.Counter
}

// Refresh outcome labels.
const (
	RefreshOK       = "ok"
	RefreshAbsent   = "absent"
	RefreshFailed   = "failed"
	RefreshRejected = "rejected"
)

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront_client",
			Name:      "requests_total",
			Help:      "API exchanges by method and status code (0 for network errors).",
		}, []string{"method", "code"}),
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront_client",
			Name:      "refreshes_total",
			Help:      "Access credential refresh attempts by outcome.",
		}, []string{"outcome"}),
		Retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront_client",
			Name:      "retries_total",
			Help:      "Calls re-issued after a successful refresh.",
		}),
		SessionsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront_client",
			Name:      "sessions_cleared_total",
			Help:      "Times both credentials were removed after a terminal auth failure.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Requests, m.Refreshes, m.Retries, m.SessionsCleared)
	}
	return m
}
