package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/internal/mock"
	"github.com/trippr-app/trippr-admin/models"
)

func TestPlaintextVerifier_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStoreAdapter(ctrl)
	verifier := NewPlaintextVerifier(mockStore)
	ctx := context.Background()

	admin := models.Admin{ID: "adm-1", Email: "admin@trippr.app", Password: "hunter22", Name: "Root"}
	doc, err := json.Marshal(admin)
	require.NoError(t, err)

	mockStore.EXPECT().
		Query(ctx, adapter.CollectionAdmin, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters []models.Filter) ([]json.RawMessage, error) {
			require.Len(t, filters, 2)
			assert.Equal(t, models.Filter{Field: "email", Op: models.OpEqual, Value: "admin@trippr.app"}, filters[0])
			assert.Equal(t, models.Filter{Field: "password", Op: models.OpEqual, Value: "hunter22"}, filters[1])
			return []json.RawMessage{doc}, nil
		})

	got, err := verifier.Verify(ctx, "admin@trippr.app", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, models.AdminSession{ID: "adm-1", Email: "admin@trippr.app", Name: "Root"}, got)
}

func TestPlaintextVerifier_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStoreAdapter(ctrl)
	verifier := NewPlaintextVerifier(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().
		Query(ctx, adapter.CollectionAdmin, gomock.Any()).
		Return(nil, nil)

	_, err := verifier.Verify(ctx, "admin@trippr.app", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBcryptVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStoreAdapter(ctrl)
	verifier := NewBcryptVerifier(mockStore)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.Admin{ID: "adm-1", Email: "admin@trippr.app", Password: string(hash)}
	doc, err := json.Marshal(admin)
	require.NoError(t, err)

	mockStore.EXPECT().
		Query(ctx, adapter.CollectionAdmin, []models.Filter{
			{Field: "email", Op: models.OpEqual, Value: "admin@trippr.app"},
		}).
		Return([]json.RawMessage{doc}, nil).
		Times(2)

	got, err := verifier.Verify(ctx, "admin@trippr.app", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "adm-1", got.ID)

	_, err = verifier.Verify(ctx, "admin@trippr.app", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
