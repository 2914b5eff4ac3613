package grpc

import (
	"context"
	"path"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
	"github.com/MKhiriev/fabric-bridge/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TraceIDMetadataKey carries the request trace id in both directions.
const TraceIDMetadataKey = "x-trace-id"

// TraceIDInterceptor attaches a trace id and a request-scoped logger to the
// context. The id is taken from the incoming metadata when present and is
// echoed back in the response header.
func TraceIDInterceptor(log *logger.Logger, ids *utils.UUIDGenerator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var traceID string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(TraceIDMetadataKey); len(values) > 0 {
				traceID = values[0]
			}
		}
		if traceID == "" {
			traceID = ids.Generate()
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID).Str("method", methodName(info.FullMethod))
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

		_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every finished call with its status code and
// duration.
func LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		logger.FromContext(ctx).Info().
			Str("full_method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("gRPC call")

		return resp, err
	}
}

// TimeoutInterceptor bounds each call by timeout. A non-positive timeout
// leaves calls unbounded.
func TimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if timeout <= 0 {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}

// MetricsInterceptor counts calls per method and status code.
func MetricsInterceptor(collector *metrics.Collector) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		collector.ObserveRPC(methodName(info.FullMethod), status.Code(err).String(), time.Since(start))

		return resp, err
	}
}

// RecoveryInterceptor turns a panic in a handler into codes.Internal.
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(ctx).Error().
					Str("full_method", info.FullMethod).
					Interface("panic", r).
					Msg("recovered from panic")
				err = status.Error(codes.Internal, "internal error")
			}
		}()

		return handler(ctx, req)
	}
}

// methodName strips the service prefix from a full method name.
func methodName(fullMethod string) string {
	return path.Base(fullMethod)
}
