package adapter

import (
	"sync"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/models"
)

const (
	// invalidEndpointID is never handed out.
	invalidEndpointID uint16 = 0xFFFF
)

// RemovalListener is notified after a device has left the registry.
type RemovalListener func(removed models.BridgedDeviceInfo)

// BridgedDeviceManager is the in-process [DeviceRegistry].
//
// Devices live in a fixed number of slots. Endpoint ids are handed out in
// increasing order starting at the first dynamic endpoint and are not reused
// until the counter wraps around, so a freshly removed endpoint is not
// immediately given to another device.
type BridgedDeviceManager struct {
	mu     sync.RWMutex
	slots  []*models.BridgedDevice
	byNode map[uint64]int

	firstDynamicEndpoint uint16
	nextEndpoint         uint16

	listeners []RemovalListener

	logger *logger.Logger
}

// NewBridgedDeviceManager creates a registry with maxDevices slots whose
// endpoints start at firstDynamicEndpoint.
func NewBridgedDeviceManager(maxDevices int, firstDynamicEndpoint uint16, logger *logger.Logger) *BridgedDeviceManager {
	logger.Debug().
		Int("max_devices", maxDevices).
		Uint16("first_dynamic_endpoint", firstDynamicEndpoint).
		Msg("creating bridged device manager")

	return &BridgedDeviceManager{
		slots:                make([]*models.BridgedDevice, maxDevices),
		byNode:               make(map[uint64]int, maxDevices),
		firstDynamicEndpoint: firstDynamicEndpoint,
		nextEndpoint:         firstDynamicEndpoint,
		logger:               logger,
	}
}

// OnRemove registers a listener called after every successful removal.
// Listeners run outside the registry lock.
func (m *BridgedDeviceManager) OnRemove(listener RemovalListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, listener)
}

// AddDevice implements [DeviceRegistry].
func (m *BridgedDeviceManager) AddDevice(device *models.BridgedDevice, parentEndpointID uint16) (uint16, error) {
	if device == nil {
		return 0, ErrNilDevice
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byNode[device.NodeID()]; exists {
		return 0, ErrDeviceAlreadyExists
	}

	slot := -1
	for i, d := range m.slots {
		if d == nil {
			slot = i
			break
		}
	}
	if slot < 0 {
		return 0, ErrRegistryFull
	}

	endpointID, ok := m.allocateEndpoint()
	if !ok {
		return 0, ErrRegistryFull
	}
	device.SetEndpoint(endpointID, parentEndpointID)

	m.slots[slot] = device
	m.byNode[device.NodeID()] = slot

	m.logger.Info().
		Str("node_id", logger.FormatNodeID(device.NodeID())).
		Uint16("endpoint_id", endpointID).
		Uint16("parent_endpoint_id", parentEndpointID).
		Int("index", slot).
		Msg("added bridged device")

	return endpointID, nil
}

// allocateEndpoint returns the next endpoint id not used by a registered
// device. It gives up after one pass over [firstDynamicEndpoint, 0xFFFE].
// The caller holds m.mu.
func (m *BridgedDeviceManager) allocateEndpoint() (uint16, bool) {
	if m.firstDynamicEndpoint >= invalidEndpointID {
		return 0, false
	}

	for range int(invalidEndpointID - m.firstDynamicEndpoint) {
		candidate := m.nextEndpoint
		m.nextEndpoint++
		if m.nextEndpoint == invalidEndpointID || m.nextEndpoint < m.firstDynamicEndpoint {
			m.nextEndpoint = m.firstDynamicEndpoint
		}

		if candidate == invalidEndpointID || candidate < m.firstDynamicEndpoint {
			continue
		}
		if !m.endpointInUse(candidate) {
			return candidate, true
		}
	}

	return 0, false
}

func (m *BridgedDeviceManager) endpointInUse(endpointID uint16) bool {
	for _, d := range m.slots {
		if d != nil && d.EndpointID() == endpointID {
			return true
		}
	}
	return false
}

// RemoveDeviceByKey implements [DeviceRegistry].
func (m *BridgedDeviceManager) RemoveDeviceByKey(nodeID uint64) (int, error) {
	m.mu.Lock()
	slot, ok := m.byNode[nodeID]
	if !ok {
		m.mu.Unlock()
		return 0, ErrDeviceNotFound
	}

	removed := m.slots[slot].Snapshot()
	m.slots[slot] = nil
	delete(m.byNode, nodeID)
	listeners := append([]RemovalListener(nil), m.listeners...)
	m.mu.Unlock()

	m.logger.Info().
		Str("node_id", logger.FormatNodeID(nodeID)).
		Uint16("endpoint_id", removed.EndpointID).
		Int("index", slot).
		Msg("removed bridged device")

	for _, l := range listeners {
		l(removed)
	}

	return slot, nil
}

// FindDeviceByKey implements [DeviceRegistry].
func (m *BridgedDeviceManager) FindDeviceByKey(nodeID uint64) (*models.BridgedDevice, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	slot, ok := m.byNode[nodeID]
	if !ok {
		return nil, false
	}
	return m.slots[slot], true
}

// Devices implements [DeviceRegistry].
func (m *BridgedDeviceManager) Devices() []models.BridgedDeviceInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	devices := make([]models.BridgedDeviceInfo, 0, len(m.byNode))
	for _, d := range m.slots {
		if d != nil {
			devices = append(devices, d.Snapshot())
		}
	}
	return devices
}

// Len returns the number of registered devices.
func (m *BridgedDeviceManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byNode)
}
