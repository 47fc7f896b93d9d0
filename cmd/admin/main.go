package main

import (
	"fmt"

	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/internal/client"
	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/service"
	"github.com/trippr-app/trippr-admin/internal/session"
	"github.com/trippr-app/trippr-admin/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("trippr-admin")
	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storeAdapter, err := adapter.NewHTTPStoreAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create store adapter")
	}

	authAdapter, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth adapter")
	}

	sessions, err := session.NewFileRepository(cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session repository")
	}

	services, err := service.NewServices(storeAdapter, authAdapter, sessions, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init admin app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("admin run error")
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
