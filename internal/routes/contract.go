package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runContractRouter(secure *echo.Group, ctrl *controllers.ContractController) {
	secure.GET("/contracts", ctrl.GetContracts)
	secure.GET("/contracts/:id", ctrl.FindContract)
	secure.POST("/contracts", ctrl.CreateContract)
	secure.PUT("/contracts/:id", ctrl.UpdateContract)
	secure.DELETE("/contracts/:id", ctrl.DeleteContract)
}
