// Package tui is the terminal front end of the admin console: a sign-in
// screen plus list/form screens for the places and users collections, all
// reading from the service layer's in-memory mirrors.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/service"
	"github.com/trippr-app/trippr-admin/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the sign-in screen until the admin authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.AdminSession, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.AdminSession{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.AdminSession{}, tea.ErrProgramKilled
	}
	if !result.authenticated {
		return models.AdminSession{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the places/users screens until the admin logs out or quits.
// logout reports whether the caller should clear the session and return to
// the login flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
