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

type ContactController struct {
	contactService services.ContactServiceInterface
	logger         *zap.Logger
}

func NewContactController(contactService services.ContactServiceInterface, logger *zap.Logger) *ContactController {
	return &ContactController{contactService: contactService, logger: logger}
}

func (c *ContactController) GetContacts(ctx echo.Context) error {
	res := c.contactService.GetContacts(ctx.Request().Context(), ctx.QueryParam("client_id"))
	return utils.SuccessResponse(ctx, res, "Список контактов успешно получен", http.StatusOK)
}

func (c *ContactController) FindContact(ctx echo.Context) error {
	res, err := c.contactService.FindContact(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Контакт успешно найден", http.StatusOK)
}

func (c *ContactController) CreateContact(ctx echo.Context) error {
	var payload dto.CreateContactDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contactService.CreateContact(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Контакт успешно создан", http.StatusCreated)
}

func (c *ContactController) UpdateContact(ctx echo.Context) error {
	var payload dto.UpdateContactDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contactService.UpdateContact(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Контакт успешно обновлён", http.StatusOK)
}

func (c *ContactController) DeleteContact(ctx echo.Context) error {
	if err := c.contactService.DeleteContact(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Контакт успешно удалён", http.StatusOK)
}
