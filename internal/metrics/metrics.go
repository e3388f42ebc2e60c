package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagecast_dispatch_ticks_total",
			Help: "Dispatcher invocations by outcome",
		},
		[]string{"outcome"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagecast_dispatch_duration_seconds",
			Help:    "Wall time of claimed campaign runs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		},
		[]string{"outcome"},
	)

	Deliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagecast_deliveries_total",
			Help: "Send attempts by path and classified outcome",
		},
		[]string{"path", "outcome"},
	)

	CampaignsReconciled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagecast_campaigns_reconciled_total",
			Help: "Stalled in-progress campaigns moved to failed",
		},
	)
)

// Delivery paths.
const (
	PathBroadcast   = "broadcast"
	PathInteractive = "interactive"
)
