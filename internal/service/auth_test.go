package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/flood_response_system/internal/config"
	"github.com/shenikar/flood_response_system/internal/session"
	session_mocks "github.com/shenikar/flood_response_system/internal/session/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T) (AuthService, *session_mocks.MockStore) {
	ctrl := gomock.NewController(t)
	store := session_mocks.NewMockStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		AdminPass:   "admin-pw",
		CommandPass: "command-pw",
		FieldPass:   "field-pw",
	}

	return NewAuthService(cfg, store, logger), store
}

func TestLogin_Success(t *testing.T) {
	svc, store := newTestAuthService(t)

	store.EXPECT().
		Create(gomock.Any(), session.Session{Username: "command", Role: RoleCommand}).
		Return("token-123", nil)

	sess, token, err := svc.Login(context.Background(), "command", "command-pw")
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, "command", sess.Username)
	assert.Equal(t, RoleCommand, sess.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "intruder", "admin-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreError(t *testing.T) {
	svc, store := newTestAuthService(t)

	store.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return("", errors.New("redis down"))

	_, _, err := svc.Login(context.Background(), "field", "field-pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_DeletesSession(t *testing.T) {
	svc, store := newTestAuthService(t)

	store.EXPECT().Delete(gomock.Any(), "token-123").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "token-123"))
}

func TestLogout_EmptyTokenIsNoop(t *testing.T) {
	svc, _ := newTestAuthService(t)

	require.NoError(t, svc.Logout(context.Background(), ""))
}
