package adapter

import (
	"context"
	"encoding/json"

	"github.com/trippr-app/trippr-admin/models"
)

// Collections owned by the hosted document store that this console operates
// on.
const (
	CollectionPlaces = "places"
	CollectionUsers  = "users"
	CollectionAdmin  = "admin"
)

// StoreAdapter is the collection-scoped surface of the hosted document store.
// Documents travel as raw JSON so the caller decides the concrete record
// type; every document carries its id in the body on reads.
type StoreAdapter interface {
	// List returns every document of a collection.
	List(ctx context.Context, collection string) ([]json.RawMessage, error)

	// Query returns the documents matching all filters.
	Query(ctx context.Context, collection string, filters []models.Filter) ([]json.RawMessage, error)

	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)

	// Create stores doc under a store-assigned id and returns that id.
	Create(ctx context.Context, collection string, doc any) (string, error)

	// Set stores doc under the given id, replacing any prior document.
	Set(ctx context.Context, collection, id string, doc any) error

	// Update merges fields into the document with the given id.
	Update(ctx context.Context, collection, id string, fields any) error

	// Delete removes the document with the given id.
	Delete(ctx context.Context, collection, id string) error
}

// AuthAdapter is the consumed surface of the hosted authentication service.
type AuthAdapter interface {
	// CreateAccount registers a password-based account and returns its id.
	// Returns ErrEmailExists or ErrWeakPassword for provider policy
	// rejections.
	CreateAccount(ctx context.Context, email, password string) (string, error)
}
