// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/client"
	"github.com/MKhiriev/go-pim-keeper/internal/config"
	"github.com/MKhiriev/go-pim-keeper/internal/crypto"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/internal/store"
	"github.com/MKhiriev/go-pim-keeper/internal/tui"
	"github.com/MKhiriev/go-pim-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewClientLogger("go-pim-keeper", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, crypto.NewKeyChainService(), log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	appInfo, err := service.NewAppInfoService(cfg.App, buildInfo)
	if err != nil {
		log.Fatal().Err(err).Msg("create app info service")
	}
	log.Info().Msg(appInfo.Describe())

	ui, err := tui.New(services, appInfo, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		os.Exit(1)
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
