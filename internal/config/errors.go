package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and flag parsing
// when configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an RPC port outside 1..65535 or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBridgeConfigs indicates a non-positive registry capacity, a
	// first dynamic endpoint that does not follow the parent endpoint, or a
	// capacity the remaining endpoint ids below 0xFFFF cannot hold.
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidStorageConfigs indicates an unsupported journal driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive report interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")
	// ErrEndpointOutOfRange indicates an endpoint id flag above 65535.
	ErrEndpointOutOfRange = errors.New("endpoint id out of range")
)
