// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SynchronizedDevice describes a device mirrored from an external ecosystem,
// as announced by the fabric admin. NodeID is always present; every other
// field carries its own presence flag and may be left unset.
type SynchronizedDevice struct {
	// NodeID identifies the device inside the bridge registry.
	NodeID uint64

	UniqueID              Optional[string]
	VendorName            Optional[string]
	VendorID              Optional[uint16]
	ProductName           Optional[string]
	ProductID             Optional[uint16]
	NodeLabel             Optional[string]
	HardwareVersion       Optional[uint16]
	HardwareVersionString Optional[string]
	SoftwareVersion       Optional[uint32]
	SoftwareVersionString Optional[string]

	// IsICD marks an intermittently connected (sleepy) device.
	IsICD Optional[bool]
}

// KeepActiveChanged reports that an intermittently connected device has
// promised to stay active for PromisedActiveDurationMs milliseconds.
type KeepActiveChanged struct {
	NodeID                   uint64
	PromisedActiveDurationMs uint32
}
