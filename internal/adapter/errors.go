package adapter

import "errors"

// Registry errors.
var (
	// ErrDeviceAlreadyExists is returned by AddDevice when the node id is
	// already registered.
	ErrDeviceAlreadyExists = errors.New("bridged device already exists")

	// ErrRegistryFull is returned by AddDevice when every slot or every
	// dynamic endpoint id is taken.
	ErrRegistryFull = errors.New("bridged device registry is full")

	// ErrNilDevice is returned by AddDevice when given a nil device.
	ErrNilDevice = errors.New("bridged device is nil")

	// ErrDeviceNotFound is returned by RemoveDeviceByKey for unknown node ids.
	ErrDeviceNotFound = errors.New("bridged device not found")
)

// Capability errors.
var (
	// ErrInvalidEndpoint is returned for endpoint ids the bridge never
	// allocates to devices (0 and 0xFFFF).
	ErrInvalidEndpoint = errors.New("invalid endpoint id")

	// ErrCapabilityAlreadyAttached is returned when the endpoint already
	// carries ecosystem information.
	ErrCapabilityAlreadyAttached = errors.New("ecosystem information already attached to endpoint")

	// ErrCapabilityTableFull is returned when no more endpoints can carry
	// ecosystem information.
	ErrCapabilityTableFull = errors.New("ecosystem information table is full")
)

// Status API errors, mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
