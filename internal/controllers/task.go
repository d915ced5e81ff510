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

type TaskController struct {
	taskService services.TaskServiceInterface
	logger      *zap.Logger
}

func NewTaskController(taskService services.TaskServiceInterface, logger *zap.Logger) *TaskController {
	return &TaskController{taskService: taskService, logger: logger}
}

func (c *TaskController) GetTasks(ctx echo.Context) error {
	res := c.taskService.GetTasks(ctx.Request().Context(), ctx.QueryParam("client_id"), ctx.QueryParam("queue_id"))
	return utils.SuccessResponse(ctx, res, "Список задач успешно получен", http.StatusOK)
}

func (c *TaskController) FindTask(ctx echo.Context) error {
	res, err := c.taskService.FindTask(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Задача успешно найдена", http.StatusOK)
}

func (c *TaskController) CreateTask(ctx echo.Context) error {
	var payload dto.CreateTaskDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.taskService.CreateTask(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Задача успешно создана", http.StatusCreated)
}

func (c *TaskController) UpdateTask(ctx echo.Context) error {
	var payload dto.UpdateTaskDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.taskService.UpdateTask(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Задача успешно обновлена", http.StatusOK)
}

func (c *TaskController) DeleteTask(ctx echo.Context) error {
	if err := c.taskService.DeleteTask(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Задача успешно удалена", http.StatusOK)
}

func (c *TaskController) ChangeStatus(ctx echo.Context) error {
	var payload dto.ChangeTaskStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.taskService.ChangeStatus(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Статус задачи успешно изменён", http.StatusOK)
}

func (c *TaskController) CompleteTask(ctx echo.Context) error {
	var payload dto.CompleteTaskDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.taskService.CompleteTask(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Задача успешно закрыта", http.StatusOK)
}

func (c *TaskController) ToggleChecklistItem(ctx echo.Context) error {
	res, err := c.taskService.ToggleChecklistItem(ctx.Request().Context(), ctx.Param("id"), ctx.Param("itemId"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Пункт чек-листа переключён", http.StatusOK)
}

func (c *TaskController) AddChecklistItem(ctx echo.Context) error {
	var payload dto.AddChecklistItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.taskService.AddChecklistItem(ctx.Request().Context(), ctx.Param("id"), payload.Text)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Пункт чек-листа добавлен", http.StatusCreated)
}

func (c *TaskController) AddTimeLog(ctx echo.Context) error {
	var payload dto.AddTimeLogDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.taskService.AddTimeLog(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Трудозатраты успешно добавлены", http.StatusCreated)
}

func (c *TaskController) GetComments(ctx echo.Context) error {
	res, err := c.taskService.GetComments(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Комментарии успешно получены", http.StatusOK)
}

func (c *TaskController) AddComment(ctx echo.Context) error {
	var payload dto.AddCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.taskService.AddComment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Комментарий успешно добавлен", http.StatusCreated)
}
