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

type DatabaseController struct {
	databaseService services.DatabaseServiceInterface
	logger          *zap.Logger
}

func NewDatabaseController(databaseService services.DatabaseServiceInterface, logger *zap.Logger) *DatabaseController {
	return &DatabaseController{databaseService: databaseService, logger: logger}
}

func (c *DatabaseController) GetDatabases(ctx echo.Context) error {
	res := c.databaseService.GetDatabases(ctx.Request().Context(), ctx.QueryParam("client_id"))
	return utils.SuccessResponse(ctx, res, "Список баз успешно получен", http.StatusOK)
}

func (c *DatabaseController) FindDatabase(ctx echo.Context) error {
	res, err := c.databaseService.FindDatabase(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "База успешно найдена", http.StatusOK)
}

func (c *DatabaseController) CreateDatabase(ctx echo.Context) error {
	var payload dto.CreateDatabaseDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.databaseService.CreateDatabase(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "База успешно создана", http.StatusCreated)
}

func (c *DatabaseController) UpdateDatabase(ctx echo.Context) error {
	var payload dto.UpdateDatabaseDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.databaseService.UpdateDatabase(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "База успешно обновлена", http.StatusOK)
}

func (c *DatabaseController) DeleteDatabase(ctx echo.Context) error {
	if err := c.databaseService.DeleteDatabase(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "База успешно удалена", http.StatusOK)
}
