package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
)

// RegistryReporter periodically publishes the size of the bridged device
// registry to the metrics collector.
type RegistryReporter struct {
	registry  adapter.DeviceRegistry
	collector *metrics.Collector
	interval  time.Duration

	logger *logger.Logger
}

func NewRegistryReporter(registry adapter.DeviceRegistry, collector *metrics.Collector, interval time.Duration, logger *logger.Logger) *RegistryReporter {
	return &RegistryReporter{
		registry:  registry,
		collector: collector,
		interval:  interval,
		logger:    logger,
	}
}

// Run reports once immediately and then on every tick until ctx is done.
func (r *RegistryReporter) Run(ctx context.Context) error {
	r.logger.Info().Dur("interval", r.interval).Msg("registry reporter started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.report()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("registry reporter stopped")
			return nil
		case <-ticker.C:
			r.report()
		}
	}
}

func (r *RegistryReporter) report() {
	devices := r.registry.Devices()

	var icd, unreachable int
	for _, device := range devices {
		if device.ICD {
			icd++
		}
		if !device.Reachable {
			unreachable++
		}
	}

	r.collector.SetRegistrySize(len(devices), icd)

	r.logger.Debug().
		Int("devices", len(devices)).
		Int("icd", icd).
		Int("unreachable", unreachable).
		Msg("bridged device registry")
}
