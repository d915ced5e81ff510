package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUserRouter(secure *echo.Group, ctrl *controllers.UserController) {
	secure.GET("/users", ctrl.GetUsers)
	secure.GET("/users/:id", ctrl.FindUser)
	secure.POST("/users", ctrl.CreateUser)
	secure.DELETE("/users/:id", ctrl.DeleteUser)
}
