// metrics.go - Metrics collection for the proving service
package main

import (
	"sort"
	"sync"
	"time"
)

// MetricType represents the type of metric
type MetricType string

const (
	Counter   MetricType = "counter"
	Gauge     MetricType = "gauge"
	Histogram MetricType = "histogram"
)

// Metric represents a single exported metric
type Metric struct {
	Name      string     `json:"name"`
	Type      MetricType `json:"type"`
	Value     float64    `json:"value"`
	Timestamp time.Time  `json:"timestamp"`
}

// MetricsCollector manages metrics collection
type MetricsCollector struct {
	mu         sync.RWMutex
	counters   map[string]int64
	gauges     map[string]float64
	histograms map[string][]float64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		counters:   make(map[string]int64),
		gauges:     make(map[string]float64),
		histograms: make(map[string][]float64),
	}
}

// IncrementCounter increments a counter metric
func (mc *MetricsCollector) IncrementCounter(name string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.counters[name]++
}

// SetGauge sets a gauge metric
func (mc *MetricsCollector) SetGauge(name string, value float64) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.gauges[name] = value
}

// ObserveDuration records a duration observation in a histogram
func (mc *MetricsCollector) ObserveDuration(name string, d time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.histograms[name] = append(mc.histograms[name], d.Seconds())
}

// Snapshot exports all metrics; histograms are reported as their median
func (mc *MetricsCollector) Snapshot() []Metric {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	now := time.Now()
	out := make([]Metric, 0, len(mc.counters)+len(mc.gauges)+len(mc.histograms))
	for name, v := range mc.counters {
		out = append(out, Metric{Name: name, Type: Counter, Value: float64(v), Timestamp: now})
	}
	for name, v := range mc.gauges {
		out = append(out, Metric{Name: name, Type: Gauge, Value: v, Timestamp: now})
	}
	for name, samples := range mc.histograms {
		out = append(out, Metric{Name: name, Type: Histogram, Value: median(samples), Timestamp: now})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]float64{}, samples...)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}
