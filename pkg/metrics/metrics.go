package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream call metrics, labelled by resource and outcome so dashboards can
// separate transport failures from server-reported errors.
var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketdesk_upstream_requests_total",
		Help: "Requests issued to the ticketing API.",
	}, []string{"method", "resource"})

	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketdesk_upstream_errors_total",
		Help: "Failed requests to the ticketing API.",
	}, []string{"method", "resource", "kind"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ticketdesk_upstream_request_duration_seconds",
		Help:    "Latency of ticketing API requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "resource"})
)

// Error kinds used as the "kind" label value.
const (
	KindTransport = "transport"
	KindServer    = "server"
)
