package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/MKhiriev/go-fleet-drivers/internal/handler"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/server"
	"github.com/MKhiriev/go-fleet-drivers/internal/service"
	"github.com/MKhiriev/go-fleet-drivers/internal/store"
	"github.com/MKhiriev/go-fleet-drivers/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("fleet-drivers").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("fleet-drivers", logger.WithLevel(cfg.Log.Level), logger.WithFile(cfg.Log.File))
	log.Debug().
		Str("auth_mode", cfg.App.AuthMode).
		Str("dialect", cfg.Storage.DB.Dialect).
		Str("backend", cfg.Storage.DB.Backend).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
