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

type MessengerController struct {
	messengerService services.MessengerServiceInterface
	logger           *zap.Logger
}

func NewMessengerController(messengerService services.MessengerServiceInterface, logger *zap.Logger) *MessengerController {
	return &MessengerController{messengerService: messengerService, logger: logger}
}

func (c *MessengerController) GetConversations(ctx echo.Context) error {
	res := c.messengerService.GetConversations(ctx.Request().Context(), ctx.QueryParam("client_id"))
	return utils.SuccessResponse(ctx, res, "Список переписок успешно получен", http.StatusOK)
}

func (c *MessengerController) GetMessages(ctx echo.Context) error {
	res, err := c.messengerService.GetMessages(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Сообщения успешно получены", http.StatusOK)
}

func (c *MessengerController) SendMessage(ctx echo.Context) error {
	var payload dto.SendMessageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.messengerService.SendMessage(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Сообщение успешно отправлено", http.StatusCreated)
}
