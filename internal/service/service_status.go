package service

import (
	"context"

	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/store"
	"github.com/MKhiriev/fabric-bridge/models"
)

const (
	DefaultEventsLimit uint64 = 50
	MaxEventsLimit     uint64 = 1000
)

type statusService struct {
	registry   adapter.DeviceRegistry
	repository store.SyncEventRepository

	logger *logger.Logger
}

func NewStatusService(registry adapter.DeviceRegistry, repository store.SyncEventRepository, logger *logger.Logger) StatusService {
	return &statusService{
		registry:   registry,
		repository: repository,
		logger:     logger,
	}
}

func (s *statusService) ListDevices(ctx context.Context) []models.BridgedDeviceInfo {
	devices := s.registry.Devices()
	if devices == nil {
		return []models.BridgedDeviceInfo{}
	}
	return devices
}

func (s *statusService) GetDevice(ctx context.Context, nodeID uint64) (models.BridgedDeviceInfo, error) {
	device, ok := s.registry.FindDeviceByKey(nodeID)
	if !ok || device == nil {
		return models.BridgedDeviceInfo{}, ErrDeviceNotFound
	}
	return device.Snapshot(), nil
}

func (s *statusService) ListEvents(ctx context.Context, nodeID uint64, limit uint64) ([]models.SyncEvent, error) {
	switch {
	case limit == 0:
		limit = DefaultEventsLimit
	case limit > MaxEventsLimit:
		limit = MaxEventsLimit
	}

	events, err := s.repository.ListByNode(ctx, nodeID, limit)
	if err != nil {
		logger.FromContext(ctx).WithNodeID(nodeID).Err(err).
			Str("func", "*statusService.ListEvents").
			Msg("failed to list sync events")
		return nil, err
	}
	if events == nil {
		return []models.SyncEvent{}, nil
	}
	return events, nil
}
