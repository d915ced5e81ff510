package routes

import (
	"crm-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTaskRouter(secure *echo.Group, ctrl *controllers.TaskController) {
	secure.GET("/tasks", ctrl.GetTasks)
	secure.GET("/tasks/:id", ctrl.FindTask)
	secure.POST("/tasks", ctrl.CreateTask)
	secure.PUT("/tasks/:id", ctrl.UpdateTask)
	secure.DELETE("/tasks/:id", ctrl.DeleteTask)

	secure.PUT("/tasks/:id/status", ctrl.ChangeStatus)
	secure.POST("/tasks/:id/complete", ctrl.CompleteTask)
	secure.POST("/tasks/:id/checklist", ctrl.AddChecklistItem)
	secure.PUT("/tasks/:id/checklist/:itemId", ctrl.ToggleChecklistItem)
	secure.POST("/tasks/:id/timelogs", ctrl.AddTimeLog)
	secure.GET("/tasks/:id/comments", ctrl.GetComments)
	secure.POST("/tasks/:id/comments", ctrl.AddComment)
}
