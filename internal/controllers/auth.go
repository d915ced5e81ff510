package controllers

import (
	"net/http"

	"crm-system/internal/dto"
	"crm-system/internal/services"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.authService.Login(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Вход выполнен успешно", http.StatusOK)
}

func (c *AuthController) RefreshToken(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.RefreshTokenDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.authService.RefreshToken(reqCtx, payload.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Токены успешно обновлены", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.authService.Me(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Текущий пользователь", http.StatusOK)
}
