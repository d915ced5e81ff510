package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runContactRouter(secure *echo.Group, ctrl *controllers.ContactController) {
	secure.GET("/contacts", ctrl.GetContacts)
	secure.GET("/contacts/:id", ctrl.FindContact)
	secure.POST("/contacts", ctrl.CreateContact)
	secure.PUT("/contacts/:id", ctrl.UpdateContact)
	secure.DELETE("/contacts/:id", ctrl.DeleteContact)
}
