package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/handler"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates the RPC server and, when handlers carry one, the status
// HTTP server. Nothing is bound until Start.
func NewServer(handlers *handler.Handlers, collector *metrics.Collector, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil {
		return nil, errNoHandlersProvided
	}

	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	servers.gRPCServer = newGRPCServer(handlers.GRPC, collector, cfg, logger)
	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	return servers, nil
}

// Start binds both listeners and serves in the background. If the HTTP
// listener fails the already running RPC server is stopped.
func (s *server) Start() error {
	if err := s.gRPCServer.Start(); err != nil {
		return err
	}

	if s.httpServer != nil {
		if err := s.httpServer.Start(); err != nil {
			s.gRPCServer.Shutdown()
			return err
		}
	}

	return nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Start(); err != nil {
		s.logger.Error().Err(err).Msg("error starting server")
		return
	}

	<-ctx.Done()

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	// HTTP first, it only reads state the RPC side writes
	if s.httpServer != nil && s.httpServer.listener != nil {
		s.httpServer.Shutdown()
	}

	if s.gRPCServer.gRPCNetListener != nil {
		s.gRPCServer.Shutdown()
	}
}
