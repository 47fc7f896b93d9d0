// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Trippr Contributors

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/service"
	"github.com/trippr-app/trippr-admin/internal/tui"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives the console lifecycle: a persisted session skips the login
// screen entirely; logout clears it and loops back to login.
func (a *App) Run() error {
	ctx := context.Background()

	restored, err := a.services.Auth.RestoreSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if restored == nil {
		adminSession, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		a.logger.Info().Str("email", adminSession.Email).Msg("admin signed in")
	} else {
		a.logger.Info().Str("email", restored.Email).Msg("session restored")
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.Auth.Logout(); err != nil {
			a.logger.Error().Err(err).Msg("logout")
		}
		return a.Run()
	}

	return nil
}
