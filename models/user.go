package models

import "time"

// User represents an end-user record of the Trippr app as stored in the
// `users` collection. When the user was created through this console its ID
// equals the linked authentication account's id.
type User struct {
	// ID is either store-assigned or equal to the auth account id.
	// Immutable once set.
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name"`

	// NPM is an institutional identifier carried as-is.
	NPM string `json:"npm"`

	// CreatedAt is set once at creation and never resent on update.
	CreatedAt *time.Time `json:"createdAt,omitempty"`

	// Favorites maps place ids to their reduced projections.
	Favorites map[string]FavoritePlace `json:"favorites,omitempty"`
}

// UserUpdate carries the only fields an admin edit may rewrite. ID and
// CreatedAt are deliberately absent so they can never be resent.
type UserUpdate struct {
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	NPM       string                   `json:"npm"`
	Favorites map[string]FavoritePlace `json:"favorites,omitempty"`
}
