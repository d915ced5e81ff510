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

type DirectoryController struct {
	directoryService services.DirectoryServiceInterface
	logger           *zap.Logger
}

func NewDirectoryController(directoryService services.DirectoryServiceInterface, logger *zap.Logger) *DirectoryController {
	return &DirectoryController{directoryService: directoryService, logger: logger}
}

func (c *DirectoryController) GetAll(ctx echo.Context) error {
	res := c.directoryService.GetAll(ctx.Request().Context())
	return utils.SuccessResponse(ctx, res, "Справочники успешно получены", http.StatusOK)
}

func (c *DirectoryController) AddItem(ctx echo.Context) error {
	var payload dto.DirectoryItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.directoryService.AddItem(ctx.Request().Context(), ctx.Param("type"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Элемент справочника успешно создан", http.StatusCreated)
}

func (c *DirectoryController) DeleteItem(ctx echo.Context) error {
	if err := c.directoryService.DeleteItem(ctx.Request().Context(), ctx.Param("type"), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Элемент справочника успешно удалён", http.StatusOK)
}
