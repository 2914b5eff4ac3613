package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAddDeviceFailed is returned when the registry refuses a new device.
	ErrAddDeviceFailed = errors.New("failed to add synchronized device")

	// ErrDeviceNotFound is returned when no bridged device has the node id.
	ErrDeviceNotFound = errors.New("synchronized device not found")
)

// UnrecoverableError reports a broken registry invariant. The process is
// not expected to continue after it: callers log it at fatal level instead
// of translating it into a response.
type UnrecoverableError struct {
	NodeID uint64
	Reason string
	Err    error
}

func (e *UnrecoverableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unrecoverable: node 0x%016X: %s", e.NodeID, e.Reason)
	}
	return fmt.Sprintf("unrecoverable: node 0x%016X: %s: %v", e.NodeID, e.Reason, e.Err)
}

func (e *UnrecoverableError) Unwrap() error {
	return e.Err
}

// IsUnrecoverable reports whether err carries an [*UnrecoverableError].
func IsUnrecoverable(err error) bool {
	var unrecoverable *UnrecoverableError
	return errors.As(err, &unrecoverable)
}
