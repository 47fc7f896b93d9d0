package service

import (
	"context"

	"github.com/trippr-app/trippr-admin/models"
)

// AuthState is the authentication flow's current state.
type AuthState int

const (
	StateLoggedOut AuthState = iota
	StateAuthenticating
	StateLoggedIn
)

// AuthService owns the login/logout state machine and the session slot.
type AuthService interface {
	// Login verifies the credentials, persists the session and populates
	// both mirrors. A mirror-population failure does not revert
	// authentication; it only sets the error slot.
	Login(ctx context.Context, email, password string) (models.AdminSession, error)

	// RestoreSession reads the persisted session. When one exists the
	// flow jumps straight to LoggedIn and both mirrors are populated; the
	// remote credential check is not re-verified.
	RestoreSession(ctx context.Context) (*models.AdminSession, error)

	// Logout clears the persisted session and empties both mirrors
	// unconditionally. No remote call is made.
	Logout() error

	// State reports the current authentication state.
	State() AuthState

	// Session returns the live session, or nil when logged out.
	Session() *models.AdminSession
}

// PlaceService owns the in-memory mirror of the places collection.
type PlaceService interface {
	// All returns a copy of the mirror in its current order.
	All() []models.Place

	// FetchAll replaces the mirror with every remote place record.
	FetchAll(ctx context.Context) error

	// Search replaces the mirror with the places whose lower-cased title
	// starts with term. An empty term behaves as FetchAll.
	Search(ctx context.Context, term string) error

	// Create stores the place remotely, then appends the record with its
	// store-assigned id to the mirror.
	Create(ctx context.Context, place models.Place) (models.Place, error)

	// Update rewrites the remote record, then replaces the matching
	// mirror entry in place. A record whose id is absent from the mirror
	// leaves the mirror unchanged.
	Update(ctx context.Context, place models.Place) error

	// Delete removes the remote record, then the matching mirror entry.
	Delete(ctx context.Context, id string) error

	// Reset empties the mirror without touching the remote store.
	Reset()
}

// UserService owns the in-memory mirror of the users collection.
type UserService interface {
	// All returns a copy of the mirror in its current order.
	All() []models.User

	// FetchAll replaces the mirror with every remote user record,
	// normalizing stored creation timestamps at read time.
	FetchAll(ctx context.Context) error

	// Create mints an auth account for the email/password pair, then
	// writes (or adopts) the store record under the account's id.
	Create(ctx context.Context, user models.User, password string) (models.User, error)

	// Update rewrites name, email, npm and favorites only, then
	// shallow-merges them into the matching mirror entry.
	Update(ctx context.Context, user models.User) error

	// Delete removes the store record only; the auth account is not
	// revoked.
	Delete(ctx context.Context, id string) error

	// Reset empties the mirror without touching the remote store.
	Reset()
}

// CredentialVerifier checks an admin email/password pair against the admin
// records collection. It is pluggable so a stronger scheme can replace the
// default plaintext comparison without touching the session or CRUD design.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (models.AdminSession, error)
}
