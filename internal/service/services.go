package service

import (
	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/store"
	"github.com/MKhiriev/fabric-bridge/models"
)

type Services struct {
	FabricBridgeService FabricBridgeService
	StatusService       StatusService
	AppInfoService      AppInfoService
}

// NewServices builds the synchronization service, decorated with the
// journal, and the read-only services behind the status API.
func NewServices(registry adapter.DeviceRegistry, capabilities adapter.CapabilityAttacher, storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	fabricBridge := NewFabricBridgeService(registry, capabilities, cfg.Bridge, logger)
	journal := NewFabricBridgeJournalService(storages.SyncEventRepository)

	return &Services{
		FabricBridgeService: journal.Wrap(fabricBridge),
		StatusService:       NewStatusService(registry, storages.SyncEventRepository, logger),
		AppInfoService:      NewAppInfoService(cfg.App, build, logger),
	}
}
