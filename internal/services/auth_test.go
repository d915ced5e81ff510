package services

import (
	"testing"
	"time"

	"crm-system/internal/dto"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, env *testEnv) *AuthService {
	t.Helper()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(env.db, jwtSvc, zapNop())
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	res, err := auth.Login(adminCtx(), dto.LoginDTO{Email: "admin@crm.local", Password: "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "u1", res.User.ID)
}

func TestLoginFailureIsOpaque(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	_, errUnknown := auth.Login(adminCtx(), dto.LoginDTO{Email: "ghost@crm.local", Password: "admin"})
	_, errWrongPass := auth.Login(adminCtx(), dto.LoginDTO{Email: "admin@crm.local", Password: "неверный"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass, "Причина отказа снаружи неразличима")
}

func TestLoginEmailIsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	_, err := auth.Login(adminCtx(), dto.LoginDTO{Email: "Admin@CRM.local", Password: "admin"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials,
		"Email хранится в нижнем регистре, вход с иным регистром отклоняется")
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(t, env)

	res, err := auth.Login(adminCtx(), dto.LoginDTO{Email: "admin@crm.local", Password: "admin"})
	require.NoError(t, err)

	_, err = auth.RefreshToken(adminCtx(), res.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)

	renewed, err := auth.RefreshToken(adminCtx(), res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	users := NewUserService(env.db, zapNop())

	require.NoError(t, users.DeleteUser(adminCtx(), "u2"))
	_, ok := env.db.Users.GetByID("u2")
	assert.False(t, ok)

	assert.ErrorIs(t, users.DeleteUser(adminCtx(), "u2"), apperrors.ErrNotFound)
}
