// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sync"
	"time"
)

// BridgedAttributes is the basic-information record exposed for a bridged
// device. Fields that were not provided by the fabric admin keep their zero
// value.
type BridgedAttributes struct {
	UniqueID              string `json:"unique_id"`
	VendorName            string `json:"vendor_name"`
	VendorID              uint16 `json:"vendor_id"`
	ProductName           string `json:"product_name"`
	ProductID             uint16 `json:"product_id"`
	NodeLabel             string `json:"node_label"`
	HardwareVersion       uint16 `json:"hardware_version"`
	HardwareVersionString string `json:"hardware_version_string"`
	SoftwareVersion       uint32 `json:"software_version"`
	SoftwareVersionString string `json:"software_version_string"`
}

// ActivityTelemetry accumulates ActiveChanged reports for a device.
type ActivityTelemetry struct {
	// ActiveChangeCount is the number of reports received so far.
	ActiveChangeCount uint64 `json:"active_change_count"`

	// LastPromisedActiveDurationMs is the duration carried by the most recent report.
	LastPromisedActiveDurationMs uint32 `json:"last_promised_active_duration_ms"`

	// LastActiveChangeAt is when the most recent report was logged.
	// Zero when no report has been received.
	LastActiveChangeAt time.Time `json:"last_active_change_at"`
}

// BridgedDevice is a device represented by the bridge on its own fabric.
//
// Once handed to a registry the device is owned by it. NodeID is immutable;
// the endpoint is assigned exactly once by the registry at add time. All
// other state is guarded by an internal mutex so the device can be mutated
// from the RPC path while other consumers read it.
type BridgedDevice struct {
	nodeID uint64

	mu               sync.RWMutex
	endpointID       uint16
	parentEndpointID uint16
	reachable        bool
	icd              bool
	attributes       BridgedAttributes
	telemetry        ActivityTelemetry

	now func() time.Time
}

// NewBridgedDevice returns an unreachable device with empty attributes.
func NewBridgedDevice(nodeID uint64) *BridgedDevice {
	return &BridgedDevice{
		nodeID: nodeID,
		now:    time.Now,
	}
}

// NodeID returns the registry key of the device.
func (d *BridgedDevice) NodeID() uint64 {
	return d.nodeID
}

func (d *BridgedDevice) EndpointID() uint16 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.endpointID
}

func (d *BridgedDevice) ParentEndpointID() uint16 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.parentEndpointID
}

// SetEndpoint records the endpoint allocated for the device and the endpoint
// it is composed under. Only registries call it.
func (d *BridgedDevice) SetEndpoint(endpointID, parentEndpointID uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.endpointID = endpointID
	d.parentEndpointID = parentEndpointID
}

func (d *BridgedDevice) IsReachable() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.reachable
}

func (d *BridgedDevice) SetReachable(reachable bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reachable = reachable
}

func (d *BridgedDevice) IsICD() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.icd
}

func (d *BridgedDevice) SetICD(icd bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.icd = icd
}

func (d *BridgedDevice) BridgedAttributes() BridgedAttributes {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.attributes
}

func (d *BridgedDevice) SetBridgedAttributes(attributes BridgedAttributes) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attributes = attributes
}

// Telemetry returns a copy of the accumulated activity telemetry.
func (d *BridgedDevice) Telemetry() ActivityTelemetry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.telemetry
}

// LogActiveChangeEvent records that the device promised to stay active for
// promisedActiveDurationMs milliseconds.
func (d *BridgedDevice) LogActiveChangeEvent(promisedActiveDurationMs uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.telemetry.ActiveChangeCount++
	d.telemetry.LastPromisedActiveDurationMs = promisedActiveDurationMs
	if d.now == nil {
		d.now = time.Now
	}
	d.telemetry.LastActiveChangeAt = d.now()
}

// Snapshot returns an immutable copy of the device state.
func (d *BridgedDevice) Snapshot() BridgedDeviceInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return BridgedDeviceInfo{
		NodeID:           d.nodeID,
		EndpointID:       d.endpointID,
		ParentEndpointID: d.parentEndpointID,
		Reachable:        d.reachable,
		ICD:              d.icd,
		Attributes:       d.attributes,
		Telemetry:        d.telemetry,
	}
}

// BridgedDeviceInfo is a point-in-time copy of a [BridgedDevice], safe to
// share and serialize.
type BridgedDeviceInfo struct {
	NodeID           uint64            `json:"node_id"`
	EndpointID       uint16            `json:"endpoint_id"`
	ParentEndpointID uint16            `json:"parent_endpoint_id"`
	Reachable        bool              `json:"reachable"`
	ICD              bool              `json:"icd"`
	Attributes       BridgedAttributes `json:"attributes"`
	Telemetry        ActivityTelemetry `json:"telemetry"`
}
