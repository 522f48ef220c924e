package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the payment module.
type Metrics struct {
	// Verification outcomes by terminal status
	VerificationOutcome *prometheus.CounterVec

	// Full verification latency including side effects
	VerifyLatency prometheus.Histogram

	// Gateway order creations by result
	OrdersCreated *prometheus.CounterVec

	// Confirmation mails that failed after a VERIFIED outcome
	NotificationFailures prometheus.Counter
}

// New creates a new Metrics instance with all payment module metrics
// registered.
func New() *Metrics {
	return &Metrics{
		VerificationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "plotdesk_payment_verifications_total",
			Help: "Total payment verification outcomes by status",
		}, []string{"status"}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "plotdesk_payment_verify_duration_seconds",
			Help:    "Duration of payment verification including side effects",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),

		OrdersCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "plotdesk_payment_orders_total",
			Help: "Total gateway order creations by result",
		}, []string{"result"}),

		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "plotdesk_payment_notification_failures_total",
			Help: "Confirmation emails that failed after successful verification",
		}),
	}
}

// IncrementOutcome records a terminal verification status.
func (m *Metrics) IncrementOutcome(status string) {
	if m != nil {
		m.VerificationOutcome.WithLabelValues(status).Inc()
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}

// IncrementOrders records a gateway order creation attempt.
func (m *Metrics) IncrementOrders(result string) {
	if m != nil {
		m.OrdersCreated.WithLabelValues(result).Inc()
	}
}

// IncrementNotificationFailures records a swallowed notification error.
func (m *Metrics) IncrementNotificationFailures() {
	if m != nil {
		m.NotificationFailures.Inc()
	}
}
