package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMessengerRouter(secure *echo.Group, ctrl *controllers.MessengerController) {
	secure.GET("/conversations", ctrl.GetConversations)
	secure.GET("/conversations/:id/messages", ctrl.GetMessages)
	secure.POST("/messages", ctrl.SendMessage)
}
