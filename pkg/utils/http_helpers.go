package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "crm-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	response := &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": invalidInput.Message,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	code := http.StatusInternalServerError
	message := "Внутренняя ошибка сервера"
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenIsNotRefresh),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader):
		code, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperrors.ErrForbidden), errors.Is(err, apperrors.ErrAdminNotDeletable):
		code, message = http.StatusForbidden, err.Error()
	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrStatusNotInQueue),
		errors.Is(err, apperrors.ErrRatingRequired),
		errors.Is(err, apperrors.ErrRatingNotAllowed),
		errors.Is(err, apperrors.ErrUnknownDirectory):
		code, message = http.StatusBadRequest, err.Error()
	default:
		logger.Error("Unexpected Error", zap.Error(err))
	}

	return c.JSON(code, map[string]interface{}{
		"status":  false,
		"message": message,
	})
}
