package controllers

import (
	"net/http"

	"crm-system/internal/services"
	"crm-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
	logger         *zap.Logger
}

func NewHistoryController(historyService services.HistoryServiceInterface, logger *zap.Logger) *HistoryController {
	return &HistoryController{historyService: historyService, logger: logger}
}

func (c *HistoryController) GetHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if clientID := ctx.QueryParam("client_id"); clientID != "" {
		res := c.historyService.GetHistoryByClient(reqCtx, clientID)
		return utils.SuccessResponse(ctx, res, "История клиента успешно получена", http.StatusOK)
	}

	res := c.historyService.GetHistory(reqCtx)
	return utils.SuccessResponse(ctx, res, "История изменений успешно получена", http.StatusOK)
}
