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

type ClientController struct {
	clientService services.ClientServiceInterface
	logger        *zap.Logger
}

func NewClientController(clientService services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{clientService: clientService, logger: logger}
}

func (c *ClientController) GetClients(ctx echo.Context) error {
	res := c.clientService.GetClients(ctx.Request().Context())
	return utils.SuccessResponse(ctx, res, "Список клиентов успешно получен", http.StatusOK)
}

func (c *ClientController) FindClient(ctx echo.Context) error {
	res, err := c.clientService.FindClient(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Клиент успешно найден", http.StatusOK)
}

func (c *ClientController) CreateClient(ctx echo.Context) error {
	var payload dto.CreateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.clientService.CreateClient(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Клиент успешно создан", http.StatusCreated)
}

func (c *ClientController) UpdateClient(ctx echo.Context) error {
	var payload dto.UpdateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.clientService.UpdateClient(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Клиент успешно обновлён", http.StatusOK)
}

func (c *ClientController) DeleteClient(ctx echo.Context) error {
	if err := c.clientService.DeleteClient(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Клиент успешно удалён", http.StatusOK)
}

func (c *ClientController) GetClientStats(ctx echo.Context) error {
	res, err := c.clientService.GetClientStats(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Статистика клиента успешно получена", http.StatusOK)
}
