package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDirectoryRouter(secure *echo.Group, ctrl *controllers.DirectoryController) {
	secure.GET("/directories", ctrl.GetAll)
	secure.POST("/directories/:type", ctrl.AddItem)
	secure.DELETE("/directories/:type/:id", ctrl.DeleteItem)
}
