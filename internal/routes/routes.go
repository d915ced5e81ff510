package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"crm-system/internal/controllers"
	"crm-system/internal/repositories"
	"crm-system/internal/services"
	"crm-system/pkg/eventbus"
	"crm-system/pkg/middleware"
	"crm-system/pkg/service"
	"crm-system/pkg/websocket"
)

// InitRouter собирает сервисы, контроллеры и маршруты в одном месте.
func InitRouter(e *echo.Echo, db *repositories.DB, bus *eventbus.Bus, hub *websocket.Hub, jwtSvc service.JWTService, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- СЕРВИСЫ ---
	historyService := services.NewHistoryService(db, bus, logger)
	authService := services.NewAuthService(db, jwtSvc, logger)
	userService := services.NewUserService(db, logger)
	clientService := services.NewClientService(db, historyService, logger)
	contactService := services.NewContactService(db, historyService, logger)
	contractService := services.NewContractService(db, historyService, logger)
	databaseService := services.NewDatabaseService(db, historyService, logger)
	queueService := services.NewQueueService(db, historyService, logger)
	taskService := services.NewTaskService(db, historyService, logger)
	directoryService := services.NewDirectoryService(db, logger)
	messengerService := services.NewMessengerService(db, bus, logger)
	reportService := services.NewReportService(db, logger)

	// --- КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	clientCtrl := controllers.NewClientController(clientService, logger)
	contactCtrl := controllers.NewContactController(contactService, logger)
	contractCtrl := controllers.NewContractController(contractService, logger)
	databaseCtrl := controllers.NewDatabaseController(databaseService, logger)
	queueCtrl := controllers.NewQueueController(queueService, logger)
	taskCtrl := controllers.NewTaskController(taskService, logger)
	directoryCtrl := controllers.NewDirectoryController(directoryService, logger)
	historyCtrl := controllers.NewHistoryController(historyService, logger)
	messengerCtrl := controllers.NewMessengerController(messengerService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	wsCtrl := controllers.NewWebSocketController(hub, jwtSvc, logger)

	// --- МАРШРУТЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authCtrl)
	runUserRouter(secureGroup, userCtrl)
	runClientRouter(secureGroup, clientCtrl)
	runContactRouter(secureGroup, contactCtrl)
	runContractRouter(secureGroup, contractCtrl)
	runDatabaseRouter(secureGroup, databaseCtrl)
	runQueueRouter(secureGroup, queueCtrl)
	runTaskRouter(secureGroup, taskCtrl)
	runDirectoryRouter(secureGroup, directoryCtrl)
	runHistoryRouter(secureGroup, historyCtrl)
	runMessengerRouter(secureGroup, messengerCtrl)
	runReportRouter(secureGroup, reportCtrl)

	e.GET("/ws", wsCtrl.ServeWs)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
