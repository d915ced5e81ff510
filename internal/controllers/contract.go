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

type ContractController struct {
	contractService services.ContractServiceInterface
	logger          *zap.Logger
}

func NewContractController(contractService services.ContractServiceInterface, logger *zap.Logger) *ContractController {
	return &ContractController{contractService: contractService, logger: logger}
}

func (c *ContractController) GetContracts(ctx echo.Context) error {
	res := c.contractService.GetContracts(ctx.Request().Context(), ctx.QueryParam("client_id"))
	return utils.SuccessResponse(ctx, res, "Список договоров успешно получен", http.StatusOK)
}

func (c *ContractController) FindContract(ctx echo.Context) error {
	res, err := c.contractService.FindContract(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Договор успешно найден", http.StatusOK)
}

func (c *ContractController) CreateContract(ctx echo.Context) error {
	var payload dto.CreateContractDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contractService.CreateContract(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Договор успешно создан", http.StatusCreated)
}

func (c *ContractController) UpdateContract(ctx echo.Context) error {
	var payload dto.UpdateContractDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Неверное тело запроса", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.contractService.UpdateContract(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Договор успешно обновлён", http.StatusOK)
}

func (c *ContractController) DeleteContract(ctx echo.Context) error {
	if err := c.contractService.DeleteContract(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Договор успешно удалён", http.StatusOK)
}
