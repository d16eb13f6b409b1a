package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookshelf/internal/config"
	httphandler "github.com/MKhiriev/go-bookshelf/internal/handler/http"
	"github.com/MKhiriev/go-bookshelf/internal/logger"
	"github.com/MKhiriev/go-bookshelf/internal/server"
	"github.com/MKhiriev/go-bookshelf/internal/service"
	"github.com/MKhiriev/go-bookshelf/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-bookshelf-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err = storages.DB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	// the /api/version endpoint falls back to the value stamped at build time
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
