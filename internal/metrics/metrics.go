package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glasscast_upstream_calls_total",
			Help: "Total weather provider API calls",
		},
		[]string{"status"},
	)

	UpstreamLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "glasscast_upstream_latency_seconds",
			Help:    "Weather provider call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SnapshotRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glasscast_snapshot_refreshes_total",
			Help: "Snapshot fetch attempts by outcome",
		},
		[]string{"outcome"},
	)

	GeolocationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glasscast_geolocation_fallbacks_total",
			Help: "Sessions that fell back to the default location",
		},
	)

	NotificationsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glasscast_notifications_enqueued_total",
			Help: "Notifications enqueued by severity",
		},
		[]string{"severity"},
	)

	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glasscast_webhook_deliveries_total",
			Help: "Native notification webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)
)
