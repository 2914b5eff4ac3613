package adapter

import (
	"sync"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/models"
)

// EcosystemInformation is the per-endpoint record of the ecosystem
// information capability.
type EcosystemInformation struct {
	EndpointID uint16    `json:"endpoint_id"`
	AttachedAt time.Time `json:"attached_at"`
}

// EcosystemInformationServer is the in-process [CapabilityAttacher]. It keeps
// at most one ecosystem-information record per endpoint.
type EcosystemInformationServer struct {
	mu        sync.RWMutex
	endpoints map[uint16]EcosystemInformation
	capacity  int

	logger *logger.Logger
}

// NewEcosystemInformationServer creates a server able to serve capacity
// endpoints at once.
func NewEcosystemInformationServer(capacity int, logger *logger.Logger) *EcosystemInformationServer {
	return &EcosystemInformationServer{
		endpoints: make(map[uint16]EcosystemInformation, capacity),
		capacity:  capacity,
		logger:    logger,
	}
}

// AttachCapability implements [CapabilityAttacher].
func (s *EcosystemInformationServer) AttachCapability(endpointID uint16) error {
	if endpointID == 0 || endpointID == invalidEndpointID {
		return ErrInvalidEndpoint
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.endpoints[endpointID]; exists {
		return ErrCapabilityAlreadyAttached
	}
	if len(s.endpoints) >= s.capacity {
		return ErrCapabilityTableFull
	}

	s.endpoints[endpointID] = EcosystemInformation{
		EndpointID: endpointID,
		AttachedAt: time.Now(),
	}
	s.logger.Debug().Uint16("endpoint_id", endpointID).Msg("ecosystem information attached")

	return nil
}

// DetachCapability drops the record of endpointID. It reports whether a
// record existed.
func (s *EcosystemInformationServer) DetachCapability(endpointID uint16) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.endpoints[endpointID]; !exists {
		return false
	}
	delete(s.endpoints, endpointID)
	s.logger.Debug().Uint16("endpoint_id", endpointID).Msg("ecosystem information detached")

	return true
}

// HasCapability reports whether endpointID carries ecosystem information.
func (s *EcosystemInformationServer) HasCapability(endpointID uint16) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.endpoints[endpointID]
	return ok
}

// OnDeviceRemoved is a [RemovalListener] releasing the endpoint of a removed
// device, so the endpoint can carry ecosystem information again once reused.
func (s *EcosystemInformationServer) OnDeviceRemoved(removed models.BridgedDeviceInfo) {
	s.DetachCapability(removed.EndpointID)
}
