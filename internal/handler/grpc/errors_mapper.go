package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/fabric-bridge/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errUnrecoverableStatus = status.Error(codes.Internal, "unrecoverable bridge state")

var errorCodeMap = map[error]codes.Code{
	service.ErrDeviceNotFound:  codes.NotFound,
	service.ErrAddDeviceFailed: codes.Unknown,
}

// statusFromError maps a service error to a gRPC status. Errors that already
// carry a status (context deadline, cancellation) keep it; anything else is
// Internal.
func statusFromError(err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}

	if s, ok := status.FromError(err); ok {
		return s.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
