package emulator

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/models"
)

// newTestClients spins up an emulator over a temp database and returns the
// console adapters pointed at it. The emulator's whole purpose is to be
// indistinguishable from the hosted services through this surface.
func newTestClients(t *testing.T) (adapter.StoreAdapter, adapter.AuthAdapter) {
	t.Helper()

	handler, err := NewHandler(&config.EmulatorConfig{
		DBPath: filepath.Join(t.TempDir(), "emulator.db"),
	}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	cfg := config.ConsoleAdapter{
		StoreAddress:   srv.URL,
		AuthAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}
	store, err := adapter.NewHTTPStoreAdapter(cfg, config.ConsoleApp{}, logger.Nop())
	require.NoError(t, err)
	auth, err := adapter.NewHTTPAuthAdapter(cfg, config.ConsoleApp{}, logger.Nop())
	require.NoError(t, err)

	return store, auth
}

func TestEmulator_DocumentLifecycle(t *testing.T) {
	store, _ := newTestClients(t)
	ctx := context.Background()

	place := models.Place{Title: "Bali Beach", Location: "Bali", Rating: 5, Type: models.PlaceTypePopular}
	id, err := store.Create(ctx, adapter.CollectionPlaces, place)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := store.Get(ctx, adapter.CollectionPlaces, id)
	require.NoError(t, err)

	var got models.Place
	require.NoError(t, json.Unmarshal(doc, &got))
	assert.Equal(t, id, got.ID, "reads carry the id in the body")
	assert.Equal(t, "Bali Beach", got.Title)

	docs, err := store.List(ctx, adapter.CollectionPlaces)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, store.Delete(ctx, adapter.CollectionPlaces, id))
	_, err = store.Get(ctx, adapter.CollectionPlaces, id)
	require.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestEmulator_PatchMergesTopLevelFields(t *testing.T) {
	store, _ := newTestClients(t)
	ctx := context.Background()

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	user := models.User{Email: "a@b.c", Name: "Ayu", NPM: "12345", CreatedAt: &createdAt}
	require.NoError(t, store.Set(ctx, adapter.CollectionUsers, "u1", user))

	require.NoError(t, store.Update(ctx, adapter.CollectionUsers, "u1", models.UserUpdate{
		Name:  "Ayu Renamed",
		Email: "a@b.c",
		NPM:   "67890",
	}))

	doc, err := store.Get(ctx, adapter.CollectionUsers, "u1")
	require.NoError(t, err)

	var got models.User
	require.NoError(t, json.Unmarshal(doc, &got))
	assert.Equal(t, "Ayu Renamed", got.Name)
	assert.Equal(t, "67890", got.NPM)
	require.NotNil(t, got.CreatedAt, "fields absent from the patch survive")
	assert.True(t, createdAt.Equal(*got.CreatedAt))
}

func TestEmulator_QueryCaseFoldedPrefixRange(t *testing.T) {
	store, _ := newTestClients(t)
	ctx := context.Background()

	for _, title := range []string{"Bali Beach", "bandung highlands", "Yogyakarta"} {
		_, err := store.Create(ctx, adapter.CollectionPlaces, models.Place{Title: title, Rating: 4, Type: models.PlaceTypeDefault})
		require.NoError(t, err)
	}

	docs, err := store.Query(ctx, adapter.CollectionPlaces, []models.Filter{
		{Field: "title", Op: models.OpGreaterOrEqual, Value: "ba", Fold: true},
		{Field: "title", Op: models.OpLessOrEqual, Value: "ba\uf8ff", Fold: true},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	titles := make([]string, 0, len(docs))
	for _, doc := range docs {
		var place models.Place
		require.NoError(t, json.Unmarshal(doc, &place))
		titles = append(titles, place.Title)
	}
	assert.ElementsMatch(t, []string{"Bali Beach", "bandung highlands"}, titles)
}

func TestEmulator_QueryEqualityFilters(t *testing.T) {
	store, _ := newTestClients(t)
	ctx := context.Background()

	admin := models.Admin{Email: "admin@trippr.app", Password: "hunter22", Name: "Root"}
	require.NoError(t, store.Set(ctx, adapter.CollectionAdmin, "adm-1", admin))

	docs, err := store.Query(ctx, adapter.CollectionAdmin, []models.Filter{
		{Field: "email", Op: models.OpEqual, Value: "admin@trippr.app"},
		{Field: "password", Op: models.OpEqual, Value: "hunter22"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	docs, err = store.Query(ctx, adapter.CollectionAdmin, []models.Filter{
		{Field: "email", Op: models.OpEqual, Value: "admin@trippr.app"},
		{Field: "password", Op: models.OpEqual, Value: "wrong"},
	})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestEmulator_SignUp(t *testing.T) {
	_, auth := newTestClients(t)
	ctx := context.Background()

	id, err := auth.CreateAccount(ctx, "a@b.c", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = auth.CreateAccount(ctx, "a@b.c", "secret123")
	require.ErrorIs(t, err, adapter.ErrEmailExists)

	_, err = auth.CreateAccount(ctx, "other@b.c", "123")
	require.ErrorIs(t, err, adapter.ErrWeakPassword)
}
