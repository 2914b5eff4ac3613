package http

import (
	"net/http"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
	"github.com/MKhiriev/fabric-bridge/internal/service"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler creates the status API handler. /metrics is served only when
// collector is not nil.
func NewHandler(services *service.Services, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services: services,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
	if collector != nil {
		h.metrics = collector.Handler()
	}
	return h
}
