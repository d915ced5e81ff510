package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "crm-system/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func respondWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	require.NoError(t, ErrorResponse(ctx, err, zap.NewNop()))
	return rec
}

func TestErrorResponseStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"неизвестная сущность", apperrors.ErrNotFound, http.StatusNotFound},
		{"невалидная ссылка", apperrors.NewInvalidInputError("очередь %s не существует", "q404"), http.StatusBadRequest},
		{"статус вне очереди", apperrors.ErrStatusNotInQueue, http.StatusBadRequest},
		{"не access-токен", apperrors.ErrTokenIsNotAccess, http.StatusUnauthorized},
		{"не refresh-токен", apperrors.ErrTokenIsNotRefresh, http.StatusUnauthorized},
		{"удаление администратора", apperrors.ErrAdminNotDeletable, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := respondWithError(t, tc.err)
			assert.Equal(t, tc.code, rec.Code, "Ошибка должна отдавать свой HTTP-код, а не 500")
		})
	}
}

func TestErrorResponseInvalidInputMessage(t *testing.T) {
	rec := respondWithError(t, apperrors.NewInvalidInputError("клиент %s не существует", "cl404"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "клиент cl404 не существует")
}
