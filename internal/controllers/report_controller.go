package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"crm-system/internal/services"
	"crm-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter, format := c.parseFilters(ctx)
	c.logger.Debug("Запрос на отчёт по задачам", zap.Any("filter", filter), zap.String("format", format))

	data, total := c.reportService.GetReport(reqCtx, filter)

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, map[string]any{"items": data, "total": total},
		"Отчёт успешно сформирован", http.StatusOK)
}

func (c *ReportController) parseFilters(ctx echo.Context) (services.ReportFilter, string) {
	filter := services.ReportFilter{
		QueueID:  ctx.QueryParam("queue_id"),
		ClientID: ctx.QueryParam("client_id"),
	}
	format := strings.ToLower(ctx.QueryParam("format"))

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse("2006-01-02", df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse("2006-01-02", dt); err == nil {
			// Включительно до конца дня.
			end := t.Add(24*time.Hour - time.Nanosecond)
			filter.DateTo = &end
		}
	}
	return filter, format
}

var reportHeaders = []string{
	"Код", "Название", "Клиент", "Очередь", "Статус", "Тип", "Приоритет",
	"Дата создания", "Срок", "Трудозатраты", "Оценка",
}

func rowToSlice(item services.ReportItem) []interface{} {
	var rating, deadline string
	if item.CompletionRating != nil {
		rating = fmt.Sprintf("%d", *item.CompletionRating)
	}
	if item.Deadline != nil {
		deadline = *item.Deadline
	}
	return []interface{}{
		item.Code, item.Title, item.ClientName, item.QueueName, item.Status,
		item.Type, item.Priority, item.CreatedAt, deadline, item.SpentTime, rating,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []services.ReportItem) error {
	f := excelize.NewFile()
	sheet := "Отчёт по задачам"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "D", 25)
	f.SetColWidth(sheet, "E", "G", 15)
	f.SetColWidth(sheet, "H", "J", 15)

	fileName := fmt.Sprintf("tasks_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
