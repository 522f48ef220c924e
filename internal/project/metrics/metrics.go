package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the catalog module.
type Metrics struct {
	CatalogCache *prometheus.CounterVec
}

// New creates a new Metrics instance with all catalog metrics registered.
func New() *Metrics {
	return &Metrics{
		CatalogCache: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "plotdesk_catalog_cache_total",
			Help: "Catalog cache lookups, by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

// ObserveCacheLookup records one cache lookup outcome.
func (m *Metrics) ObserveCacheLookup(result string) {
	if m != nil {
		m.CatalogCache.WithLabelValues(result).Inc()
	}
}
