package monitoring

import (
	"sync"
	"time"
)

// Monitor keeps the latest values of the menu service metrics
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Copy so callers can't race with writers
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordFilter records the outcome of one filter request
func (m *Monitor) RecordFilter(source string, resultSize int) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	count, _ := m.metrics["filter_requests"].(int)
	m.metrics["filter_requests"] = count + 1
	m.metrics[source+"_last_result_size"] = resultSize
	m.metrics["last_filtered"] = time.Now().Format(time.RFC3339)
}

// RecordResolve records the outcome of one ingredient resolution
func (m *Monitor) RecordResolve(dishID string, resolved, fallbacks int) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	total, _ := m.metrics["ingredient_fallbacks"].(int)
	m.metrics["ingredient_fallbacks"] = total + fallbacks
	m.metrics["dish_"+dishID+"_ingredients"] = resolved
}
