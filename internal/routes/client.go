package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runClientRouter(secure *echo.Group, ctrl *controllers.ClientController) {
	secure.GET("/clients", ctrl.GetClients)
	secure.GET("/clients/:id", ctrl.FindClient)
	secure.GET("/clients/:id/stats", ctrl.GetClientStats)
	secure.POST("/clients", ctrl.CreateClient)
	secure.PUT("/clients/:id", ctrl.UpdateClient)
	secure.DELETE("/clients/:id", ctrl.DeleteClient)
}
