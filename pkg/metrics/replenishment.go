package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ReplenishmentMetrics records planning run outcomes.
type ReplenishmentMetrics struct {
	runDuration     *prometheus.HistogramVec
	recommendations *prometheus.CounterVec
	productsSkipped *prometheus.CounterVec
}

// NewReplenishmentMetrics registers the planning metrics on the provided registerer.
func NewReplenishmentMetrics(reg prometheus.Registerer) *ReplenishmentMetrics {
	if reg == nil {
		return &ReplenishmentMetrics{}
	}
	runDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "replenishment_run_duration_seconds",
		Help:    "Duration of replenishment planning runs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"store"})
	recommendations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "replenishment_recommendations_total",
		Help: "Reorder recommendations produced per store.",
	}, []string{"store"})
	productsSkipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "replenishment_products_skipped_total",
		Help: "Products skipped during planning because their evaluation failed.",
	}, []string{"store"})
	reg.MustRegister(runDuration, recommendations, productsSkipped)
	return &ReplenishmentMetrics{
		runDuration:     runDuration,
		recommendations: recommendations,
		productsSkipped: productsSkipped,
	}
}

// ObserveRunDuration records how long a planning run took for the store.
func (m *ReplenishmentMetrics) ObserveRunDuration(store string, duration time.Duration) {
	if m == nil || m.runDuration == nil {
		return
	}
	m.runDuration.WithLabelValues(normalizeLabel(store)).Observe(duration.Seconds())
}

// AddRecommendations increments the per-store recommendation counter.
func (m *ReplenishmentMetrics) AddRecommendations(store string, count int) {
	if m == nil || m.recommendations == nil || count <= 0 {
		return
	}
	m.recommendations.WithLabelValues(normalizeLabel(store)).Add(float64(count))
}

// IncProductSkipped increments the skipped-product counter for the store.
func (m *ReplenishmentMetrics) IncProductSkipped(store string) {
	if m == nil || m.productsSkipped == nil {
		return
	}
	m.productsSkipped.WithLabelValues(normalizeLabel(store)).Inc()
}

func normalizeLabel(store string) string {
	if store == "" {
		return "unknown"
	}
	return store
}
