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

type QueueController struct {
	queueService services.QueueServiceInterface
	logger       *zap.Logger
}

func NewQueueController(queueService services.QueueServiceInterface, logger *zap.Logger) *QueueController {
	return &QueueController{queueService: queueService, logger: logger}
}

func (c *QueueController) GetQueues(ctx echo.Context) error {
	res := c.queueService.GetQueues(ctx.Request().Context())
	return utils.SuccessResponse(ctx, res, "Список очередей успешно получен", http.StatusOK)
}

func (c *QueueController) FindQueue(ctx echo.Context) error {
	res, err := c.queueService.FindQueue(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Очередь успешно найдена", http.StatusOK)
}

func (c *QueueController) CreateQueue(ctx echo.Context) error {
	var payload dto.CreateQueueDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.queueService.CreateQueue(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Очередь успешно создана", http.StatusCreated)
}

func (c *QueueController) UpdateQueue(ctx echo.Context) error {
	var payload dto.UpdateQueueDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.queueService.UpdateQueue(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Очередь успешно обновлена", http.StatusOK)
}

func (c *QueueController) DeleteQueue(ctx echo.Context) error {
	if err := c.queueService.DeleteQueue(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Очередь успешно удалена", http.StatusOK)
}

func (c *QueueController) GetQueueTemplates(ctx echo.Context) error {
	res := c.queueService.GetQueueTemplates(ctx.Request().Context())
	return utils.SuccessResponse(ctx, res, "Список шаблонов успешно получен", http.StatusOK)
}

func (c *QueueController) CreateQueueTemplate(ctx echo.Context) error {
	var payload dto.CreateQueueTemplateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.queueService.CreateQueueTemplate(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Шаблон успешно создан", http.StatusCreated)
}

func (c *QueueController) UpdateQueueTemplate(ctx echo.Context) error {
	var payload dto.UpdateQueueTemplateDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.queueService.UpdateQueueTemplate(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Шаблон успешно обновлён", http.StatusOK)
}

func (c *QueueController) DeleteQueueTemplate(ctx echo.Context) error {
	if err := c.queueService.DeleteQueueTemplate(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Шаблон успешно удалён", http.StatusOK)
}
