package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh", ctrl.RefreshToken)
	secure.GET("/auth/me", ctrl.Me)
}
