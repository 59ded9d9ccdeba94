package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestReplenishmentMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewReplenishmentMetrics(reg)
	store := "11111111-1111-1111-1111-111111111111"

	metrics.ObserveRunDuration(store, 150*time.Millisecond)
	metrics.AddRecommendations(store, 3)
	metrics.IncProductSkipped(store)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "replenishment_recommendations_total", "store", store); err != nil {
		t.Fatalf("fetch recommendations: %v", err)
	} else if got != 3 {
		t.Fatalf("expected recommendations=3, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "replenishment_products_skipped_total", "store", store); err != nil {
		t.Fatalf("fetch skipped: %v", err)
	} else if got != 1 {
		t.Fatalf("expected skipped=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "replenishment_run_duration_seconds", "store", store); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestReplenishmentMetricsNilSafe(t *testing.T) {
	var metrics *ReplenishmentMetrics
	metrics.ObserveRunDuration("store", time.Second)
	metrics.AddRecommendations("store", 2)
	metrics.IncProductSkipped("store")

	unregistered := NewReplenishmentMetrics(nil)
	unregistered.ObserveRunDuration("store", time.Second)
	unregistered.AddRecommendations("store", 2)
	unregistered.IncProductSkipped("store")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
