package monitoring

import (
	"testing"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}

	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordFilter(t *testing.T) {
	m := NewMonitor()

	m.RecordFilter("http", 3)
	m.RecordFilter("ws", 0)

	metrics := m.GetMetrics()

	if metrics["filter_requests"] != 2 {
		t.Errorf("Expected 'filter_requests' to be 2, but got %v", metrics["filter_requests"])
	}
	if metrics["http_last_result_size"] != 3 {
		t.Errorf("Expected 'http_last_result_size' to be 3, but got %v", metrics["http_last_result_size"])
	}
	if metrics["ws_last_result_size"] != 0 {
		t.Errorf("Expected 'ws_last_result_size' to be 0, but got %v", metrics["ws_last_result_size"])
	}
	if _, exists := metrics["last_filtered"]; !exists {
		t.Errorf("Expected 'last_filtered' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordResolve(t *testing.T) {
	m := NewMonitor()

	m.RecordResolve("7", 5, 1)
	m.RecordResolve("9", 4, 2)

	value, _ := m.GetMetric("ingredient_fallbacks")
	if value != 3 {
		t.Errorf("Expected 'ingredient_fallbacks' to be 3, but got %v", value)
	}
	value, _ = m.GetMetric("dish_9_ingredients")
	if value != 4 {
		t.Errorf("Expected 'dish_9_ingredients' to be 4, but got %v", value)
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// uptime is added on every GetMetrics call
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}
