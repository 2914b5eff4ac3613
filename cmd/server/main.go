package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fabric-bridge/internal/adapter"
	"github.com/MKhiriev/fabric-bridge/internal/config"
	"github.com/MKhiriev/fabric-bridge/internal/handler"
	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/MKhiriev/fabric-bridge/internal/metrics"
	"github.com/MKhiriev/fabric-bridge/internal/server"
	"github.com/MKhiriev/fabric-bridge/internal/service"
	"github.com/MKhiriev/fabric-bridge/internal/store"
	"github.com/MKhiriev/fabric-bridge/internal/workers"
	"github.com/MKhiriev/fabric-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("fabric-bridge")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	registry := adapter.NewBridgedDeviceManager(cfg.Bridge.MaxDevices, cfg.Bridge.FirstDynamicEndpoint, log)
	ecosystem := adapter.NewEcosystemInformationServer(cfg.Bridge.MaxDevices, log)
	registry.OnRemove(ecosystem.OnDeviceRemoved)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(registry, ecosystem, storages, *cfg, build, log)
	collector := metrics.NewCollector()

	handlers, err := handler.NewHandlers(services, collector, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, collector, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(
		workers.NewRegistryReporter(registry, collector, cfg.Workers.ReportInterval, log),
	)
	go func() {
		if err := bgWorkers.Run(ctx); err != nil {
			log.Error().Err(err).Msg("background workers stopped")
		}
	}()

	srv.RunServer()
}
