package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/internal/app"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/mock"
	"github.com/trippr-app/trippr-admin/models"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (*userService, *Status, *mock.MockStoreAdapter, *mock.MockAuthAdapter) {
	t.Helper()
	mockStore := mock.NewMockStoreAdapter(ctrl)
	mockAuth := mock.NewMockAuthAdapter(ctrl)
	status := &Status{}
	svc := NewUserService(mockStore, mockAuth, status, logger.Nop()).(*userService)
	return svc, status, mockStore, mockAuth
}

func TestUserService_FetchAll_NormalizesCreatedAtToUTC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockStore, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	doc := json.RawMessage(`{"id":"u1","email":"a@b.c","name":"Ayu","npm":"12345","createdAt":"2026-08-30T10:00:00+07:00"}`)
	mockStore.EXPECT().List(ctx, adapter.CollectionUsers).Return([]json.RawMessage{doc}, nil)

	require.NoError(t, svc.FetchAll(ctx))

	got := svc.All()
	require.Len(t, got, 1)
	require.NotNil(t, got[0].CreatedAt)
	assert.Equal(t, time.UTC, got[0].CreatedAt.Location())
	assert.Equal(t, "2026-08-30T03:00:00Z", got[0].CreatedAt.Format(time.RFC3339))
}

func TestUserService_Create_EmptyPasswordShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, _, _ := newTestUserSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.User{Email: "a@b.c", Name: "Ayu"}, "")
	require.ErrorIs(t, err, ErrMissingPassword)
	assert.Equal(t, app.MsgPasswordRequired, status.Error())
	assert.Empty(t, svc.All())
}

func TestUserService_Create_NewRecordUnderAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockStore, mockAuth := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAuth.EXPECT().CreateAccount(ctx, "a@b.c", "secret123").Return("acc-1", nil),
		mockStore.EXPECT().Get(ctx, adapter.CollectionUsers, "acc-1").Return(nil, adapter.ErrNotFound),
		mockStore.EXPECT().
			Set(ctx, adapter.CollectionUsers, "acc-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, doc any) error {
				record, ok := doc.(models.User)
				require.True(t, ok)
				assert.Empty(t, record.ID, "id is carried by the document path, not the body")
				require.NotNil(t, record.CreatedAt)
				assert.WithinDuration(t, time.Now().UTC(), *record.CreatedAt, time.Minute)
				return nil
			}),
	)

	created, err := svc.Create(ctx, models.User{Email: "a@b.c", Name: "Ayu", NPM: "12345"}, "secret123")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", created.ID)
	assert.NotNil(t, created.CreatedAt)

	got := svc.All()
	require.Len(t, got, 1)
	assert.Equal(t, created, got[0])
}

func TestUserService_Create_AdoptsExistingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockStore, mockAuth := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	existing := json.RawMessage(`{"email":"old@b.c","name":"Old Name","npm":"99999","createdAt":"2025-01-01T00:00:00Z"}`)
	gomock.InOrder(
		mockAuth.EXPECT().CreateAccount(ctx, "a@b.c", "secret123").Return("acc-1", nil),
		mockStore.EXPECT().Get(ctx, adapter.CollectionUsers, "acc-1").Return(existing, nil),
	)

	// The stored record wins over the form values; no Set call is made.
	created, err := svc.Create(ctx, models.User{Email: "a@b.c", Name: "Ayu"}, "secret123")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", created.ID)
	assert.Equal(t, "old@b.c", created.Email)
	assert.Equal(t, "Old Name", created.Name)
}

func TestUserService_Create_EmailExistsSurfacesProviderMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, _, mockAuth := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().CreateAccount(ctx, "a@b.c", "secret123").Return("", adapter.ErrEmailExists)

	_, err := svc.Create(ctx, models.User{Email: "a@b.c"}, "secret123")
	require.ErrorIs(t, err, ErrRemoteOperationFailed)
	assert.Equal(t, adapter.ErrEmailExists.Error(), status.Error())
}

func TestUserService_Create_GenericFailureUsesSummaryMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, _, mockAuth := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockAuth.EXPECT().CreateAccount(ctx, "a@b.c", "secret123").Return("", errors.New("server unavailable"))

	_, err := svc.Create(ctx, models.User{Email: "a@b.c"}, "secret123")
	require.ErrorIs(t, err, ErrRemoteOperationFailed)
	assert.Equal(t, app.MsgFailedToAddUser, status.Error())
}

func TestUserService_Update_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, _, _ := newTestUserSvc(t, ctrl)

	err := svc.Update(context.Background(), models.User{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrMissingID)
	assert.Equal(t, app.MsgUserIDRequired, status.Error())
}

func TestUserService_Update_ShallowMergePreservesCreatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockStore, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.append(models.User{ID: "u1", Email: "old@b.c", Name: "Old", NPM: "11111", CreatedAt: &createdAt})

	mockStore.EXPECT().
		Update(ctx, adapter.CollectionUsers, "u1", models.UserUpdate{
			Name:  "New Name",
			Email: "new@b.c",
			NPM:   "22222",
		}).
		Return(nil)

	require.NoError(t, svc.Update(ctx, models.User{ID: "u1", Name: "New Name", Email: "new@b.c", NPM: "22222"}))

	got := svc.All()
	require.Len(t, got, 1)
	assert.Equal(t, "New Name", got[0].Name)
	assert.Equal(t, "new@b.c", got[0].Email)
	assert.Equal(t, "22222", got[0].NPM)
	require.NotNil(t, got[0].CreatedAt, "createdAt is never touched by an update")
	assert.Equal(t, createdAt, *got[0].CreatedAt)
}

func TestUserService_Delete_RemovesMirrorEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockStore, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	svc.append(models.User{ID: "u1", Name: "First"})
	svc.append(models.User{ID: "u2", Name: "Second"})

	mockStore.EXPECT().Delete(ctx, adapter.CollectionUsers, "u1").Return(nil)

	require.NoError(t, svc.Delete(ctx, "u1"))

	got := svc.All()
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)
}

func TestUserService_Delete_RemoteFailureKeepsMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, mockStore, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	svc.append(models.User{ID: "u1"})
	mockStore.EXPECT().Delete(ctx, adapter.CollectionUsers, "u1").Return(errors.New("server unavailable"))

	err := svc.Delete(ctx, "u1")
	require.ErrorIs(t, err, ErrRemoteOperationFailed)
	assert.Equal(t, app.MsgFailedToDeleteUser, status.Error())
	assert.Len(t, svc.All(), 1)
}
