package service

import (
	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/session"
)

// Services aggregates everything the presentation layer talks to: the auth
// flow, both mirrors, and the shared status surface.
type Services struct {
	Auth   AuthService
	Places PlaceService
	Users  UserService

	status *Status
}

// NewServices wires the service layer over the given adapters and session
// repository. A nil verifier selects the default plaintext credential
// lookup.
func NewServices(store adapter.StoreAdapter, auth adapter.AuthAdapter, sessions session.Repository, verifier CredentialVerifier, log *logger.Logger) (*Services, error) {
	if verifier == nil {
		verifier = NewPlaintextVerifier(store)
	}

	status := &Status{}
	places := NewPlaceService(store, status, log.GetChildLogger())
	users := NewUserService(store, auth, status, log.GetChildLogger())
	authSvc := NewAuthService(verifier, sessions, places, users, status, log.GetChildLogger())

	return &Services{
		Auth:   authSvc,
		Places: places,
		Users:  users,
		status: status,
	}, nil
}

// CurrentError returns the single outstanding error message, or "".
func (s *Services) CurrentError() string {
	return s.status.Error()
}

// ClearError dismisses the outstanding error message. Successful operations
// never clear it implicitly.
func (s *Services) ClearError() {
	s.status.clear()
}

// IsLoading reports whether a fetch is in flight.
func (s *Services) IsLoading() bool {
	return s.status.Loading()
}
