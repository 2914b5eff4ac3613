package service

import (
	"context"

	"github.com/MKhiriev/fabric-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FabricBridgeService keeps the bridged device registry in step with the
// devices the fabric admin synchronizes from another ecosystem.
//
// Errors: [ErrAddDeviceFailed], [ErrDeviceNotFound] and
// [*UnrecoverableError]. The last one terminates the process by contract.
type FabricBridgeService interface {
	// AddSynchronizedDevice bridges device and returns the endpoint id the
	// registry allocated for it.
	AddSynchronizedDevice(ctx context.Context, device models.SynchronizedDevice) (uint16, error)
	RemoveSynchronizedDevice(ctx context.Context, nodeID uint64) error
	ActiveChanged(ctx context.Context, change models.KeepActiveChanged) error
}

// FabricBridgeServiceWrapper defines middleware composition for
// FabricBridgeService. Implementations wrap an existing FabricBridgeService
// to add behavior such as journaling.
type FabricBridgeServiceWrapper interface {
	Wrap(FabricBridgeService) FabricBridgeService // returns a decorated FabricBridgeService applying additional behavior
}

// StatusService answers read-only queries about the bridge state for the
// status API.
type StatusService interface {
	// ListDevices returns a snapshot of every bridged device ordered by slot.
	ListDevices(ctx context.Context) []models.BridgedDeviceInfo

	// GetDevice returns the snapshot of one device or [ErrDeviceNotFound].
	GetDevice(ctx context.Context, nodeID uint64) (models.BridgedDeviceInfo, error)

	// ListEvents returns the newest journal events recorded for nodeID.
	// A zero limit selects the default page size.
	ListEvents(ctx context.Context, nodeID uint64, limit uint64) ([]models.SyncEvent, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
