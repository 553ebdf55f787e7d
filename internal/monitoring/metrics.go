package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketSales = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_sales_total",
			Help: "Total tickets marked as sold",
		},
	)

	ticketReleases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_releases_total",
			Help: "Total tickets released back to the pool",
		},
	)

	paymentToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_toggles_total",
			Help: "Total payment flag changes",
		},
		[]string{"paid"},
	)

	ticketsByState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tickets_by_state",
			Help: "Current ticket counts per window and status",
		},
		[]string{"window", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Track a completed sale
func TrackSale() {
	ticketSales.Inc()
}

// Track a release back to the pool
func TrackRelease() {
	ticketReleases.Inc()
}

// Track a payment flag change
func TrackPaidToggle(paid bool) {
	paymentToggles.WithLabelValues(strconv.FormatBool(paid)).Inc()
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

// SetWindowState publishes the gauge pair for one window.
func SetWindowState(window string, free, sold int) {
	ticketsByState.WithLabelValues(window, "free").Set(float64(free))
	ticketsByState.WithLabelValues(window, "sold").Set(float64(sold))
}
