package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CapturesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_captures_total",
			Help: "Total captures by outcome (captured, repeated, rejected, failed)",
		},
		[]string{"outcome"},
	)

	CaptureRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_capture_rejections_total",
			Help: "Captures rejected because the gateway transaction did not match the checkout config",
		},
		[]string{"reason"},
	)

	CapturedAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_captured_amount_cents",
			Help:    "Distribution of captured amounts in cents",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 12),
		},
		[]string{"method"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_notifications_total",
			Help: "Gateway status notifications recorded",
		},
		[]string{"status"},
	)
)

func RegisterMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(
		CapturesTotal,
		CaptureRejections,
		CapturedAmounts,
		NotificationsTotal,
	)
}
