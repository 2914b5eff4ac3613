package grpc

import (
	"context"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/rpc/fabricbridge"
	"github.com/MKhiriev/fabric-bridge/internal/service"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
)

// Handler is the FabricBridge gRPC service implementation.
//
// It decodes wire messages, delegates to the synchronization service and maps
// the outcome to a gRPC status. A handler instance is created once at startup
// and shared by the gRPC server.
type Handler struct {
	fabricbridge.UnimplementedFabricBridgeServer

	// fabricBridge runs the synchronization logic.
	fabricBridge service.FabricBridgeService

	// fatal terminates the process on an unrecoverable error.
	fatal func(ctx context.Context, err error)

	logger *logger.Logger
}

// NewHandler constructs a [Handler] backed by services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		logger: logger,
	}
	if services != nil {
		h.fabricBridge = services.FabricBridgeService
	}
	h.fatal = h.logFatal

	return h
}

// logFatal logs err at fatal level; zerolog exits the process afterwards.
// The handler's own logger is used since a context logger may be disabled,
// and a disabled logger never exits.
func (h *Handler) logFatal(ctx context.Context, err error) {
	traceID, _ := utils.GetTraceIDFromContext(ctx)
	h.logger.Fatal().Err(err).Str("trace_id", traceID).Msg("unrecoverable bridge state")
}

// AddSynchronizedDevice bridges a device synchronized from another fabric.
//
// Unset optional fields are translated to empty attributes. A node id that is
// already bridged, or a full registry, yields codes.Unknown. An unrecoverable
// registry state terminates the process.
//
// Parameters:
//   - ctx: request context carrying the trace id and logger.
//   - in: the synchronized device descriptor from the fabric admin.
func (h *Handler) AddSynchronizedDevice(ctx context.Context, in *fabricbridge.SynchronizedDevice) (*fabricbridge.Empty, error) {
	_, err := h.fabricBridge.AddSynchronizedDevice(ctx, toSynchronizedDevice(in))
	return h.respond(ctx, err)
}

// RemoveSynchronizedDevice removes the bridged device keyed by in.NodeID.
// Every other field of in is ignored. Unknown node ids yield codes.NotFound.
//
// Parameters:
//   - ctx: request context carrying the trace id and logger.
//   - in: descriptor whose NodeID selects the device.
func (h *Handler) RemoveSynchronizedDevice(ctx context.Context, in *fabricbridge.SynchronizedDevice) (*fabricbridge.Empty, error) {
	err := h.fabricBridge.RemoveSynchronizedDevice(ctx, in.GetNodeID())
	return h.respond(ctx, err)
}

// ActiveChanged records that an intermittently connected device became active
// and forwards the promised active duration to its bridged counterpart.
// Unknown node ids yield codes.NotFound.
//
// Parameters:
//   - ctx: request context carrying the trace id and logger.
//   - in: node id and promised active duration in milliseconds.
func (h *Handler) ActiveChanged(ctx context.Context, in *fabricbridge.KeepActiveChanged) (*fabricbridge.Empty, error) {
	err := h.fabricBridge.ActiveChanged(ctx, toKeepActiveChanged(in))
	return h.respond(ctx, err)
}

// respond maps the service outcome to the RPC result.
func (h *Handler) respond(ctx context.Context, err error) (*fabricbridge.Empty, error) {
	if err == nil {
		return &fabricbridge.Empty{}, nil
	}

	if service.IsUnrecoverable(err) {
		h.fatal(ctx, err)
		// only reached when fatal has been replaced, i.e. in tests
		return nil, errUnrecoverableStatus
	}

	return nil, statusFromError(err)
}
