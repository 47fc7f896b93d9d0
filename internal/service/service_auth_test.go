package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trippr-app/trippr-admin/internal/app"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/internal/mock"
	"github.com/trippr-app/trippr-admin/models"
)

// newTestAuthSvc builds an authService over mocks and a fresh status slot.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authService,
	*Status,
	*mock.MockCredentialVerifier,
	*mock.MockRepository,
	*mock.MockPlaceService,
	*mock.MockUserService,
) {
	t.Helper()
	mockVerifier := mock.NewMockCredentialVerifier(ctrl)
	mockSessions := mock.NewMockRepository(ctrl)
	mockPlaces := mock.NewMockPlaceService(ctrl)
	mockUsers := mock.NewMockUserService(ctrl)

	status := &Status{}
	svc := NewAuthService(mockVerifier, mockSessions, mockPlaces, mockUsers, status, logger.Nop()).(*authService)

	return svc, status, mockVerifier, mockSessions, mockPlaces, mockUsers
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, mockVerifier, mockSessions, mockPlaces, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adminSession := models.AdminSession{ID: "adm-1", Email: "admin@trippr.app", Name: "Root"}

	gomock.InOrder(
		mockVerifier.EXPECT().Verify(ctx, "admin@trippr.app", "hunter22").Return(adminSession, nil),
		mockSessions.EXPECT().Persist(adminSession).Return(nil),
		mockPlaces.EXPECT().FetchAll(ctx).Return(nil),
		mockUsers.EXPECT().FetchAll(ctx).Return(nil),
	)

	got, err := svc.Login(ctx, "admin@trippr.app", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, adminSession, got)
	assert.Equal(t, StateLoggedIn, svc.State())
	require.NotNil(t, svc.Session())
	assert.Equal(t, adminSession, *svc.Session())
	assert.Empty(t, status.Error())
	assert.False(t, status.Loading())
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, mockVerifier, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockVerifier.EXPECT().
		Verify(ctx, "admin@trippr.app", "wrong").
		Return(models.AdminSession{}, ErrInvalidCredentials)

	_, err := svc.Login(ctx, "admin@trippr.app", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateLoggedOut, svc.State())
	assert.Nil(t, svc.Session())
	assert.Equal(t, app.MsgInvalidCredentials, status.Error())
}

func TestAuthService_Login_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, mockVerifier, mockSessions, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adminSession := models.AdminSession{ID: "adm-1", Email: "admin@trippr.app"}
	gomock.InOrder(
		mockVerifier.EXPECT().Verify(ctx, "admin@trippr.app", "hunter22").Return(adminSession, nil),
		mockSessions.EXPECT().Persist(adminSession).Return(errors.New("disk full")),
	)

	_, err := svc.Login(ctx, "admin@trippr.app", "hunter22")
	require.Error(t, err)
	assert.Equal(t, StateLoggedOut, svc.State())
	assert.Equal(t, app.MsgInvalidCredentials, status.Error())
}

// A mirror-population failure must not revert authentication: the admin stays
// logged in and the fetch failure lives in the error slot only.
func TestAuthService_Login_FetchFailureKeepsLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockVerifier, mockSessions, mockPlaces, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adminSession := models.AdminSession{ID: "adm-1", Email: "admin@trippr.app"}
	gomock.InOrder(
		mockVerifier.EXPECT().Verify(ctx, "admin@trippr.app", "hunter22").Return(adminSession, nil),
		mockSessions.EXPECT().Persist(adminSession).Return(nil),
		mockPlaces.EXPECT().FetchAll(ctx).Return(errors.New("server unavailable")),
		mockUsers.EXPECT().FetchAll(ctx).Return(nil),
	)

	got, err := svc.Login(ctx, "admin@trippr.app", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, adminSession, got)
	assert.Equal(t, StateLoggedIn, svc.State())
}

func TestAuthService_RestoreSession_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockSessions, _, _ := newTestAuthSvc(t, ctrl)

	mockSessions.EXPECT().Restore().Return(nil, nil)

	got, err := svc.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, StateLoggedOut, svc.State())
}

func TestAuthService_RestoreSession_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockSessions, mockPlaces, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adminSession := models.AdminSession{ID: "adm-1", Email: "admin@trippr.app"}
	gomock.InOrder(
		mockSessions.EXPECT().Restore().Return(&adminSession, nil),
		mockPlaces.EXPECT().FetchAll(ctx).Return(nil),
		mockUsers.EXPECT().FetchAll(ctx).Return(nil),
	)

	got, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, adminSession, *got)
	assert.Equal(t, StateLoggedIn, svc.State())
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, status, _, mockSessions, mockPlaces, mockUsers := newTestAuthSvc(t, ctrl)

	svc.setSession(models.AdminSession{ID: "adm-1"})
	status.fail("stale failure")

	mockSessions.EXPECT().Clear().Return(nil)
	mockPlaces.EXPECT().Reset()
	mockUsers.EXPECT().Reset()

	require.NoError(t, svc.Logout())
	assert.Equal(t, StateLoggedOut, svc.State())
	assert.Nil(t, svc.Session())
	assert.Empty(t, status.Error())
}

func TestAuthService_Logout_ClearFailureStillLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockSessions, mockPlaces, mockUsers := newTestAuthSvc(t, ctrl)

	svc.setSession(models.AdminSession{ID: "adm-1"})

	mockSessions.EXPECT().Clear().Return(errors.New("permission denied"))
	mockPlaces.EXPECT().Reset()
	mockUsers.EXPECT().Reset()

	require.Error(t, svc.Logout())
	assert.Equal(t, StateLoggedOut, svc.State())
	assert.Nil(t, svc.Session())
}
