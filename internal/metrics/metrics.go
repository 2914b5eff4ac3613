// Package metrics exposes the bridge's Prometheus collectors: per-method RPC
// counters and latencies and the size of the bridged device registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fabric_bridge"

// Collector owns a private registry so several bridges (or tests) can live
// in one process.
type Collector struct {
	registry *prometheus.Registry

	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec

	bridgedDevices prometheus.Gauge
	icdDevices     prometheus.Gauge
}

// NewCollector creates the collectors and registers them together with the
// Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.rpcRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total number of FabricBridge RPC requests by method and status code",
		},
		[]string{"method", "code"},
	)

	c.rpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Time taken to serve a FabricBridge RPC request",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method"},
	)

	c.bridgedDevices = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bridged_devices",
		Help:      "Number of devices currently in the bridged device registry",
	})

	c.icdDevices = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "icd_devices",
		Help:      "Number of registered devices flagged as intermittently connected",
	})

	c.registry.MustRegister(
		c.rpcRequests,
		c.rpcDuration,
		c.bridgedDevices,
		c.icdDevices,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// ObserveRPC records one finished RPC.
func (c *Collector) ObserveRPC(method, code string, duration time.Duration) {
	c.rpcRequests.WithLabelValues(method, code).Inc()
	c.rpcDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// SetRegistrySize publishes the registry gauges.
func (c *Collector) SetRegistrySize(devices, icd int) {
	c.bridgedDevices.Set(float64(devices))
	c.icdDevices.Set(float64(icd))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
