package grpc

import (
	"github.com/MKhiriev/fabric-bridge/internal/rpc/fabricbridge"
	"github.com/MKhiriev/fabric-bridge/models"
)

// toSynchronizedDevice converts the wire message. Presence is carried over
// field by field; 32-bit wire ids are narrowed to the 16-bit attribute
// width.
func toSynchronizedDevice(in *fabricbridge.SynchronizedDevice) models.SynchronizedDevice {
	if in == nil {
		return models.SynchronizedDevice{}
	}

	return models.SynchronizedDevice{
		NodeID:                in.NodeID,
		UniqueID:              optional(in.UniqueID),
		VendorName:            optional(in.VendorName),
		VendorID:              narrow(in.VendorID),
		ProductName:           optional(in.ProductName),
		ProductID:             narrow(in.ProductID),
		NodeLabel:             optional(in.NodeLabel),
		HardwareVersion:       narrow(in.HardwareVersion),
		HardwareVersionString: optional(in.HardwareVersionString),
		SoftwareVersion:       optional(in.SoftwareVersion),
		SoftwareVersionString: optional(in.SoftwareVersionString),
		IsICD:                 optional(in.IsICD),
	}
}

func toKeepActiveChanged(in *fabricbridge.KeepActiveChanged) models.KeepActiveChanged {
	if in == nil {
		return models.KeepActiveChanged{}
	}
	return models.KeepActiveChanged{
		NodeID:                   in.NodeID,
		PromisedActiveDurationMs: in.PromisedActiveDurationMs,
	}
}

func optional[T any](v *T) models.Optional[T] {
	if v == nil {
		return models.None[T]()
	}
	return models.Some(*v)
}

func narrow(v *uint32) models.Optional[uint16] {
	if v == nil {
		return models.None[uint16]()
	}
	return models.Some(uint16(*v))
}
