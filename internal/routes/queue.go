package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runQueueRouter(secure *echo.Group, ctrl *controllers.QueueController) {
	secure.GET("/queues", ctrl.GetQueues)
	secure.GET("/queues/:id", ctrl.FindQueue)
	secure.POST("/queues", ctrl.CreateQueue)
	secure.PUT("/queues/:id", ctrl.UpdateQueue)
	secure.DELETE("/queues/:id", ctrl.DeleteQueue)

	secure.GET("/queue-templates", ctrl.GetQueueTemplates)
	secure.POST("/queue-templates", ctrl.CreateQueueTemplate)
	secure.PUT("/queue-templates/:id", ctrl.UpdateQueueTemplate)
	secure.DELETE("/queue-templates/:id", ctrl.DeleteQueueTemplate)
}
