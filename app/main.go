package main

import (
	"net/http"

	"crm-system/internal/listeners"
	"crm-system/internal/repositories"
	"crm-system/internal/routes"
	"crm-system/pkg/config"
	"crm-system/pkg/customvalidator"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/eventbus"
	"crm-system/pkg/kvstore"
	applogger "crm-system/pkg/logger"
	"crm-system/pkg/service"
	"crm-system/pkg/utils"
	"crm-system/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Паника при обработке запроса",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	kv, err := kvstore.Open(cfg.Storage.DataDir)
	if err != nil {
		logger.Fatal("Не удалось открыть хранилище", zap.Error(err), zap.String("dir", cfg.Storage.DataDir))
	}
	defer kv.Close()

	db, err := repositories.NewDB(kv)
	if err != nil {
		logger.Fatal("Не удалось инициализировать коллекции", zap.Error(err))
	}

	bus := eventbus.New(logger)
	hub := websocket.NewHub(logger)
	go hub.Run()

	listeners.NewRefreshListener(hub, logger).Register(bus)

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	routes.InitRouter(e, db, bus, hub, jwtSvc, logger)

	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
