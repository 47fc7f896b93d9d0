package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/logger"
)

func newTestAuthAdapter(t *testing.T, handler http.HandlerFunc) AuthAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	adapter, err := NewHTTPAuthAdapter(
		config.ConsoleAdapter{AuthAddress: srv.URL, RequestTimeout: 5 * time.Second},
		config.ConsoleApp{APIKey: "test-key"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return adapter
}

func TestHTTPAuthAdapter_CreateAccount_Success(t *testing.T) {
	adapter := newTestAuthAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/accounts/signup", r.URL.Path)

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.c", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"localId":"acc-1","email":"a@b.c","idToken":"ignored"}`)) //nolint:errcheck
	})

	id, err := adapter.CreateAccount(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)
}

// Deployments that omit localId still carry the account id as the ID token's
// subject claim.
func TestHTTPAuthAdapter_CreateAccount_IDFromTokenSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "acc-from-token"})
	signed, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)

	adapter := newTestAuthAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response, _ := json.Marshal(map[string]string{"email": "a@b.c", "idToken": signed})
		w.Write(response) //nolint:errcheck
	})

	id, err := adapter.CreateAccount(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "acc-from-token", id)
}

func TestHTTPAuthAdapter_CreateAccount_EmailExists(t *testing.T) {
	adapter := newTestAuthAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"EMAIL_EXISTS"}}`)) //nolint:errcheck
	})

	_, err := adapter.CreateAccount(context.Background(), "a@b.c", "secret123")
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestHTTPAuthAdapter_CreateAccount_WeakPasswordKeepsDetail(t *testing.T) {
	adapter := newTestAuthAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"WEAK_PASSWORD : Password should be at least 6 characters"}}`)) //nolint:errcheck
	})

	_, err := adapter.CreateAccount(context.Background(), "a@b.c", "123")
	require.ErrorIs(t, err, ErrWeakPassword)
	assert.Contains(t, err.Error(), "at least 6 characters")
}

func TestHTTPAuthAdapter_CreateAccount_UnknownErrorEnvelope(t *testing.T) {
	adapter := newTestAuthAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`)) //nolint:errcheck
	})

	_, err := adapter.CreateAccount(context.Background(), "a@b.c", "secret123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}
