package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNodeID             = errors.New("node id must not be zero")
	ErrVendorIDOutOfRange        = errors.New("vendor id does not fit in 16 bits")
	ErrProductIDOutOfRange       = errors.New("product id does not fit in 16 bits")
	ErrHardwareVersionOutOfRange = errors.New("hardware version does not fit in 16 bits")
)
