package validators

import (
	"context"
	"math"

	"github.com/MKhiriev/fabric-bridge/internal/rpc/fabricbridge"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldNodeID          = "node_id"
	FieldVendorID        = "vendor_id"
	FieldProductID       = "product_id"
	FieldHardwareVersion = "hardware_version"
)

type SynchronizedDeviceValidator struct {
}

func NewSynchronizedDeviceValidator() Validator {
	return &SynchronizedDeviceValidator{}
}

func (v *SynchronizedDeviceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *fabricbridge.SynchronizedDevice:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSynchronizedDevice(value, fields...)
	case fabricbridge.SynchronizedDevice:
		return v.validateSynchronizedDevice(&value, fields...)

	case *fabricbridge.KeepActiveChanged:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateKeepActiveChanged(value, fields...)
	case fabricbridge.KeepActiveChanged:
		return v.validateKeepActiveChanged(&value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SynchronizedDeviceValidator) validateSynchronizedDevice(device *fabricbridge.SynchronizedDevice, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNodeID, FieldVendorID, FieldProductID, FieldHardwareVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldNodeID:
			if device.NodeID == 0 {
				return ErrInvalidNodeID
			}
		case FieldVendorID:
			if !fitsUint16(device.VendorID) {
				return ErrVendorIDOutOfRange
			}
		case FieldProductID:
			if !fitsUint16(device.ProductID) {
				return ErrProductIDOutOfRange
			}
		case FieldHardwareVersion:
			if !fitsUint16(device.HardwareVersion) {
				return ErrHardwareVersionOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SynchronizedDeviceValidator) validateKeepActiveChanged(change *fabricbridge.KeepActiveChanged, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNodeID}
	}

	for _, f := range fields {
		switch f {
		case FieldNodeID:
			if change.NodeID == 0 {
				return ErrInvalidNodeID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// fitsUint16 reports whether an optional wire id is unset or within range.
func fitsUint16(v *uint32) bool {
	return v == nil || *v <= math.MaxUint16
}
