// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the boundary contracts between the synchronization
// controller and the parts of the bridge it does not own: the bridged device
// registry, the cluster layer that attaches ecosystem information to new
// endpoints, and the status API consumed by the control CLI.
//
// The in-process implementations ([BridgedDeviceManager],
// [EcosystemInformationServer]) are safe for concurrent use; the RPC path is
// not their only caller.
package adapter

import (
	"context"

	"github.com/MKhiriev/fabric-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DeviceRegistry stores bridged devices, allocates their endpoints and
// indexes them by node id.
//
// Implementations must be safe for concurrent add, remove, find and
// telemetry mutation from multiple goroutines.
type DeviceRegistry interface {
	// AddDevice takes ownership of device, composes it under
	// parentEndpointID and returns the endpoint allocated for it.
	// Returns [ErrDeviceAlreadyExists] when the node id is already
	// registered and [ErrRegistryFull] when no slot is free.
	AddDevice(device *models.BridgedDevice, parentEndpointID uint16) (uint16, error)

	// RemoveDeviceByKey releases the device registered under nodeID and
	// returns the slot index it occupied. Returns [ErrDeviceNotFound] when
	// no such device exists.
	RemoveDeviceByKey(nodeID uint64) (int, error)

	// FindDeviceByKey returns the live device registered under nodeID.
	FindDeviceByKey(nodeID uint64) (*models.BridgedDevice, bool)

	// Devices returns snapshots of every registered device ordered by slot.
	Devices() []models.BridgedDeviceInfo
}

// CapabilityAttacher binds the ecosystem-information capability to an
// endpoint after the device behind it has been created.
type CapabilityAttacher interface {
	AttachCapability(endpointID uint16) error
}

// StatusAdapter reads the bridge status API. It is used by the control CLI.
type StatusAdapter interface {
	// ListDevices returns every bridged device known to the bridge.
	ListDevices(ctx context.Context) ([]models.BridgedDeviceInfo, error)

	// GetDevice returns one bridged device. Returns [ErrNotFound] (wrapped)
	// when the bridge does not know the node id.
	GetDevice(ctx context.Context, nodeID uint64) (models.BridgedDeviceInfo, error)
}
