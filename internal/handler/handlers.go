package handler

import (
	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/handler/grpc"
	"github.com/MKhiriev/fabric-bridge/internal/handler/http"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
	"github.com/MKhiriev/fabric-bridge/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. GRPC stays nil
// when the FabricBridge service is disabled and HTTP stays nil when no
// status API address is configured.
func NewHandlers(services *service.Services, collector *metrics.Collector, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}

	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, collector, logger)
	}
	if !cfg.Bridge.DisableFabricBridgeService.On() {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	return handlers, nil
}
