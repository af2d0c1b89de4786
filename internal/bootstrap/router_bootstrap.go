package bootstrap

import (
	"fmt"
	"strings"

	"campportal/internal/controller"
	"campportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (app *BootstrapApp) setupRouter() (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.Recovery())

	if len(app.config.TrustedProxies) > 0 {
		err := engine.SetTrustedProxies(strings.Split(app.config.TrustedProxies, ","))

		if err != nil {
			return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
		}
	}

	corsMiddleware := middleware.NewCorsMiddleware()

	err := corsMiddleware.Init()

	if err != nil {
		return nil, fmt.Errorf("failed to initialize cors middleware: %w", err)
	}

	engine.Use(corsMiddleware.Middleware())

	contextMiddleware := middleware.NewContextMiddleware(app.services.brokerService)

	err = contextMiddleware.Init()

	if err != nil {
		return nil, fmt.Errorf("failed to initialize context middleware: %w", err)
	}

	engine.Use(contextMiddleware.Middleware())

	zerologMiddleware := middleware.NewZerologMiddleware()

	err = zerologMiddleware.Init()

	if err != nil {
		return nil, fmt.Errorf("failed to initialize zerolog middleware: %w", err)
	}

	engine.Use(zerologMiddleware.Middleware())

	apiRouter := engine.Group("/api")

	authController := controller.NewAuthController(apiRouter, app.services.brokerService)
	authController.SetupRoutes()

	botController := controller.NewBotController(controller.BotControllerConfig{
		BotKey: app.config.BotKey,
	}, apiRouter, app.services.brokerService)
	botController.SetupRoutes()

	playerController := controller.NewPlayerController(apiRouter, app.services.playerService, app.services.catalogService)
	playerController.SetupRoutes()

	mailController := controller.NewMailController(apiRouter, app.services.mailService)
	mailController.SetupRoutes()

	publicController := controller.NewPublicController(apiRouter, app.services.publicService, app.services.catalogService)
	publicController.SetupRoutes()

	healthController := controller.NewHealthController(controller.HealthControllerConfig{
		InstanceID: app.context.instanceID,
	}, apiRouter, app.services.brokerService)
	healthController.SetupRoutes()

	resourcesController := controller.NewResourcesController(controller.ResourcesControllerConfig{
		ResourcesDir: app.config.ResourcesDir,
	}, &engine.RouterGroup)
	resourcesController.SetupRoutes()

	engine.NoRoute(resourcesController.PageHandler)

	return engine, nil
}
