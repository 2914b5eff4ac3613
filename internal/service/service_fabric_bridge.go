package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/models"
)

type fabricBridgeService struct {
	registry         adapter.DeviceRegistry
	capabilities     adapter.CapabilityAttacher
	parentEndpointID uint16

	logger *logger.Logger
}

// NewFabricBridgeService creates the synchronization service. Devices are
// composed under cfg.ParentEndpointID.
func NewFabricBridgeService(registry adapter.DeviceRegistry, capabilities adapter.CapabilityAttacher, cfg config.Bridge, logger *logger.Logger) FabricBridgeService {
	logger.Debug().Uint16("parent_endpoint_id", cfg.ParentEndpointID).Msg("creating fabric bridge service")
	return &fabricBridgeService{
		registry:         registry,
		capabilities:     capabilities,
		parentEndpointID: cfg.ParentEndpointID,
		logger:           logger,
	}
}

func (s *fabricBridgeService) AddSynchronizedDevice(ctx context.Context, device models.SynchronizedDevice) (uint16, error) {
	log := logger.FromContext(ctx).WithNodeID(device.NodeID)
	log.Info().Msg("AddSynchronizedDevice received")

	bridged := models.NewBridgedDevice(device.NodeID)
	bridged.SetReachable(true)
	bridged.SetBridgedAttributes(TranslateAttributes(device))
	bridged.SetICD(device.IsICD.Set && device.IsICD.Value)

	endpointID, err := s.registry.AddDevice(bridged, s.parentEndpointID)
	if err != nil {
		log.Err(err).Str("func", "*fabricBridgeService.AddSynchronizedDevice").Msg("failed to add device")
		return 0, fmt.Errorf("%w: %w", ErrAddDeviceFailed, err)
	}

	added, ok := s.registry.FindDeviceByKey(device.NodeID)
	if !ok || added == nil {
		return 0, &UnrecoverableError{NodeID: device.NodeID, Reason: "device missing from registry right after add"}
	}

	if err = s.capabilities.AttachCapability(endpointID); err != nil {
		return 0, &UnrecoverableError{NodeID: device.NodeID, Reason: fmt.Sprintf("failed to attach ecosystem information to endpoint %d", endpointID), Err: err}
	}

	log.Info().Uint16("endpoint_id", endpointID).Msg("added synchronized device")
	return endpointID, nil
}

func (s *fabricBridgeService) RemoveSynchronizedDevice(ctx context.Context, nodeID uint64) error {
	log := logger.FromContext(ctx).WithNodeID(nodeID)
	log.Info().Msg("RemoveSynchronizedDevice received")

	index, err := s.registry.RemoveDeviceByKey(nodeID)
	if err != nil {
		log.Err(err).Str("func", "*fabricBridgeService.RemoveSynchronizedDevice").Msg("failed to remove device")
		if errors.Is(err, adapter.ErrDeviceNotFound) {
			return fmt.Errorf("%w: %w", ErrDeviceNotFound, err)
		}
		return err
	}

	log.Info().Int("index", index).Msg("removed synchronized device")
	return nil
}

func (s *fabricBridgeService) ActiveChanged(ctx context.Context, change models.KeepActiveChanged) error {
	log := logger.FromContext(ctx).WithNodeID(change.NodeID)
	log.Info().Uint32("promised_active_duration_ms", change.PromisedActiveDurationMs).Msg("ActiveChanged received")

	device, ok := s.registry.FindDeviceByKey(change.NodeID)
	if !ok || device == nil {
		log.Error().Str("func", "*fabricBridgeService.ActiveChanged").Msg("could not find bridged device")
		return ErrDeviceNotFound
	}

	device.LogActiveChangeEvent(change.PromisedActiveDurationMs)
	return nil
}
