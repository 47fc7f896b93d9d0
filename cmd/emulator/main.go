package main

import (
	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/emulator"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/server"
)

func main() {
	log := logger.NewLogger("trippr-emulator")

	cfg, err := config.GetEmulatorConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler, err := emulator.NewHandler(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create emulator handler")
	}

	srv := server.New(cfg.Address, handler.Init(), log)
	if err = srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("emulator server")
	}
}
