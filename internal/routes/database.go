package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDatabaseRouter(secure *echo.Group, ctrl *controllers.DatabaseController) {
	secure.GET("/databases", ctrl.GetDatabases)
	secure.GET("/databases/:id", ctrl.FindDatabase)
	secure.POST("/databases", ctrl.CreateDatabase)
	secure.PUT("/databases/:id", ctrl.UpdateDatabase)
	secure.DELETE("/databases/:id", ctrl.DeleteDatabase)
}
