package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runHistoryRouter(secure *echo.Group, ctrl *controllers.HistoryController) {
	secure.GET("/history", ctrl.GetHistory)
}
