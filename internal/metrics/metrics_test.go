package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMetricFamily(t *testing.T, c *Collector, name string) *dto.MetricFamily {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestCollector_ObserveRPC(t *testing.T) {
	c := NewCollector()

	c.ObserveRPC("AddSynchronizedDevice", "OK", 2*time.Millisecond)
	c.ObserveRPC("AddSynchronizedDevice", "OK", 3*time.Millisecond)
	c.ObserveRPC("AddSynchronizedDevice", "Unknown", time.Millisecond)

	requests := findMetricFamily(t, c, "fabric_bridge_rpc_requests_total")
	require.NotNil(t, requests)
	require.Len(t, requests.GetMetric(), 2)

	counts := map[string]float64{}
	for _, m := range requests.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "code" {
				counts[l.GetValue()] = m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, counts["OK"])
	assert.Equal(t, 1.0, counts["Unknown"])

	duration := findMetricFamily(t, c, "fabric_bridge_rpc_request_duration_seconds")
	require.NotNil(t, duration)
	assert.Equal(t, uint64(3), duration.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestCollector_SetRegistrySize(t *testing.T) {
	c := NewCollector()

	c.SetRegistrySize(5, 2)

	devices := findMetricFamily(t, c, "fabric_bridge_bridged_devices")
	require.NotNil(t, devices)
	assert.Equal(t, 5.0, devices.GetMetric()[0].GetGauge().GetValue())

	icd := findMetricFamily(t, c, "fabric_bridge_icd_devices")
	require.NotNil(t, icd)
	assert.Equal(t, 2.0, icd.GetMetric()[0].GetGauge().GetValue())
}

func TestCollector_IndependentRegistries(t *testing.T) {
	first := NewCollector()
	second := NewCollector()

	first.SetRegistrySize(3, 0)

	assert.Equal(t, 0.0, findMetricFamily(t, second, "fabric_bridge_bridged_devices").GetMetric()[0].GetGauge().GetValue())
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.SetRegistrySize(1, 1)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fabric_bridge_bridged_devices 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
