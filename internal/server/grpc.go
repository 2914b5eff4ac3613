package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/fabric-bridge/internal/config"
	myGRPC "github.com/MKhiriev/fabric-bridge/internal/handler/grpc"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
	"github.com/MKhiriev/fabric-bridge/internal/rpc/fabricbridge"
	"github.com/MKhiriev/fabric-bridge/internal/utils"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type grpcServer struct {
	server *grpc.Server
	health *health.Server

	address         string
	gRPCNetListener net.Listener

	logger *logger.Logger
}

// newGRPCServer builds the RPC server. The FabricBridge service is
// registered only when handler is not nil; the health service always is.
func newGRPCServer(handler *myGRPC.Handler, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) *grpcServer {
	interceptors := []grpc.UnaryServerInterceptor{
		myGRPC.TraceIDInterceptor(logger, utils.NewUUIDGenerator()),
		myGRPC.LoggingInterceptor(),
	}
	if collector != nil {
		interceptors = append(interceptors, myGRPC.MetricsInterceptor(collector))
	}
	interceptors = append(interceptors,
		myGRPC.TimeoutInterceptor(cfg.RequestTimeout),
		myGRPC.RecoveryInterceptor(),
	)

	g := &grpcServer{
		server:  grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...)),
		health:  health.NewServer(),
		address: fmt.Sprintf(":%d", cfg.RPCPort),
		logger:  logger,
	}

	healthpb.RegisterHealthServer(g.server, g.health)

	if handler != nil {
		fabricbridge.RegisterFabricBridgeServer(g.server, handler)
		g.health.SetServingStatus(fabricbridge.ServiceName, healthpb.HealthCheckResponse_SERVING)
		logger.Info().Str("service", fabricbridge.ServiceName).Msg("FabricBridge service registered")
	} else {
		logger.Warn().Str("service", fabricbridge.ServiceName).Msg("FabricBridge service disabled")
	}

	return g
}

func (g *grpcServer) Start() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = lis

	g.logger.Info().Str("address", lis.Addr().String()).Msg("Launching gRPC server")
	go g.RunServer()

	return nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.health.Shutdown()
	g.server.GracefulStop()
}

// addr returns the bound address, or nil before Start.
func (g *grpcServer) addr() net.Addr {
	if g.gRPCNetListener == nil {
		return nil
	}
	return g.gRPCNetListener.Addr()
}
