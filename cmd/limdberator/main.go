// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/schnusch/limdberator/internal/config"
	handlerhttp "github.com/schnusch/limdberator/internal/handler/http"
	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/internal/server"
	"github.com/schnusch/limdberator/internal/service"
	"github.com/schnusch/limdberator/internal/store"
	"github.com/schnusch/limdberator/internal/telemetry"
	"github.com/schnusch/limdberator/internal/validators"
	"github.com/schnusch/limdberator/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("limdberator")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetGlobalLevel(cfg.App.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")
	if cfg.App.Version != "" {
		log.Info().Str("version", cfg.App.Version).Msg("starting limdberator")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	validator, err := validators.NewScrapeValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error compiling scrape schema")
	}

	metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)
	services := service.NewServices(repos, metrics, log)
	handler := handlerhttp.NewHandler(services, validator, repos.DB, metrics, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewMaintenanceWorker(repos.DB, cfg.Workers.MaintenanceInterval, log),
	)
	go background.Run(ctx)

	srv.RunServer()
	cancel()

	if err := repos.DB.Close(); err != nil {
		log.Err(err).Msg("error closing database")
	}
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
