// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fabricbridge is the wire contract of the chip.rpc.FabricBridge
// service: its messages, the gRPC service descriptor, the JSON codec the
// messages travel with and a typed client.
//
// Optional fields are pointers: nil means the sender did not set the field,
// which is distinct from a set zero value.
package fabricbridge

// SynchronizedDevice describes a device mirrored from another ecosystem.
// Only NodeID is read by RemoveSynchronizedDevice.
type SynchronizedDevice struct {
	NodeID uint64 `json:"node_id"`

	UniqueID              *string `json:"unique_id,omitempty"`
	VendorName            *string `json:"vendor_name,omitempty"`
	VendorID              *uint32 `json:"vendor_id,omitempty"`
	ProductName           *string `json:"product_name,omitempty"`
	ProductID             *uint32 `json:"product_id,omitempty"`
	NodeLabel             *string `json:"node_label,omitempty"`
	HardwareVersion       *uint32 `json:"hardware_version,omitempty"`
	HardwareVersionString *string `json:"hardware_version_string,omitempty"`
	SoftwareVersion       *uint32 `json:"software_version,omitempty"`
	SoftwareVersionString *string `json:"software_version_string,omitempty"`
	IsICD                 *bool   `json:"is_icd,omitempty"`
}

// KeepActiveChanged reports that a device promised to stay active.
type KeepActiveChanged struct {
	NodeID                   uint64 `json:"node_id"`
	PromisedActiveDurationMs uint32 `json:"promised_active_duration_ms"`
}

// Empty is the response of every FabricBridge method.
type Empty struct{}

// Ptr returns a pointer to v. It is a convenience for filling optional
// fields.
func Ptr[T any](v T) *T {
	return &v
}

// GetNodeID returns the node id, or zero for a nil message.
func (x *SynchronizedDevice) GetNodeID() uint64 {
	if x == nil {
		return 0
	}
	return x.NodeID
}

// GetNodeID returns the node id, or zero for a nil message.
func (x *KeepActiveChanged) GetNodeID() uint64 {
	if x == nil {
		return 0
	}
	return x.NodeID
}
