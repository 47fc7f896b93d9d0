package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/trippr-app/trippr-admin/internal/app"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/session"
	"github.com/trippr-app/trippr-admin/models"
)

type authService struct {
	verifier CredentialVerifier
	sessions session.Repository
	places   PlaceService
	users    UserService
	status   *Status
	logger   *logger.Logger

	mu      sync.RWMutex
	state   AuthState
	current *models.AdminSession
}

// NewAuthService wires the authentication flow over a credential verifier,
// the session repository and both mirrors.
func NewAuthService(verifier CredentialVerifier, sessions session.Repository, places PlaceService, users UserService, status *Status, log *logger.Logger) AuthService {
	return &authService{
		verifier: verifier,
		sessions: sessions,
		places:   places,
		users:    users,
		status:   status,
		logger:   log,
		state:    StateLoggedOut,
	}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.AdminSession, error) {
	a.setState(StateAuthenticating)
	a.status.setLoading(true)
	defer a.status.setLoading(false)

	adminSession, err := a.verifier.Verify(ctx, email, password)
	if err != nil {
		a.setState(StateLoggedOut)
		a.status.fail(app.MsgInvalidCredentials)
		a.logger.Warn().Err(err).Str("email", email).Msg("login rejected")
		return models.AdminSession{}, ErrInvalidCredentials
	}

	if err = a.sessions.Persist(adminSession); err != nil {
		a.setState(StateLoggedOut)
		a.status.fail(app.MsgInvalidCredentials)
		a.logger.Error().Err(err).Msg("persist session")
		return models.AdminSession{}, fmt.Errorf("persist session: %w", err)
	}

	a.setSession(adminSession)

	// Mirror population happens after the transition: a fetch failure
	// sets the error slot but does not revert authentication.
	a.populateMirrors(ctx)

	return adminSession, nil
}

func (a *authService) RestoreSession(ctx context.Context) (*models.AdminSession, error) {
	adminSession, err := a.sessions.Restore()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if adminSession == nil {
		return nil, nil
	}

	a.setSession(*adminSession)
	a.populateMirrors(ctx)

	return adminSession, nil
}

func (a *authService) Logout() error {
	err := a.sessions.Clear()
	if err != nil {
		a.logger.Error().Err(err).Msg("clear session slot")
	}

	a.places.Reset()
	a.users.Reset()
	a.status.clear()

	a.mu.Lock()
	a.state = StateLoggedOut
	a.current = nil
	a.mu.Unlock()

	return err
}

func (a *authService) State() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *authService) Session() *models.AdminSession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil
	}
	copied := *a.current
	return &copied
}

func (a *authService) populateMirrors(ctx context.Context) {
	if err := a.places.FetchAll(ctx); err != nil {
		a.logger.Error().Err(err).Msg("populate places mirror")
	}
	if err := a.users.FetchAll(ctx); err != nil {
		a.logger.Error().Err(err).Msg("populate users mirror")
	}
}

func (a *authService) setState(state AuthState) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
}

func (a *authService) setSession(adminSession models.AdminSession) {
	a.mu.Lock()
	a.state = StateLoggedIn
	a.current = &adminSession
	a.mu.Unlock()
}
