package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the lead module.
type Metrics struct {
	LeadsCreated *prometheus.CounterVec
}

// New creates a new Metrics instance with all lead module metrics registered.
func New() *Metrics {
	return &Metrics{
		LeadsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "plotdesk_leads_created_total",
			Help: "Total leads captured, by traffic source",
		}, []string{"source"}),
	}
}

// IncrementLeadsCreated records one captured lead.
func (m *Metrics) IncrementLeadsCreated(source string) {
	if m != nil {
		if source == "" {
			source = "direct"
		}
		m.LeadsCreated.WithLabelValues(source).Inc()
	}
}
