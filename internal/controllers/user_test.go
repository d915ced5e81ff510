package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-system/internal/repositories"
	"crm-system/internal/services"
	"crm-system/pkg/kvstore"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserController(t *testing.T) (*UserController, *repositories.DB) {
	t.Helper()

	kv, err := kvstore.OpenInMemory()
	require.NoError(t, err, "Не удалось открыть хранилище в памяти")
	t.Cleanup(func() { kv.Close() })

	db, err := repositories.NewDB(kv)
	require.NoError(t, err)

	logger := zap.NewNop()
	return NewUserController(services.NewUserService(db, logger), logger), db
}

func deleteUserRequest(ctrl *UserController, id string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/users/:id")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	_ = ctrl.DeleteUser(ctx)
	return rec
}

func TestDeleteUserRefusesAdmin(t *testing.T) {
	ctrl, db := newUserController(t)

	rec := deleteUserRequest(ctrl, "u1")
	assert.Equal(t, http.StatusForbidden, rec.Code, "Администратора удалить нельзя")
	_, ok := db.Users.GetByID("u1")
	assert.True(t, ok, "Администратор должен остаться в хранилище")
}

func TestDeleteUserRegular(t *testing.T) {
	ctrl, db := newUserController(t)

	rec := deleteUserRequest(ctrl, "u2")
	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := db.Users.GetByID("u2")
	assert.False(t, ok)

	rec = deleteUserRequest(ctrl, "u2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
