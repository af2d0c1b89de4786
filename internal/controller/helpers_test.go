package controller_test

import (
	"strconv"
	"testing"

	"campportal/internal/config"
	"campportal/internal/controller"
	"campportal/internal/middleware"
	"campportal/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gotest.tools/v3/assert"
)

const testBotKey = "test-bot-key-0123456789"

type testPortal struct {
	engine   *gin.Engine
	database *gorm.DB
	broker   *service.BrokerService
}

// setupPortal wires an in-memory portal with the same middleware and
// routes as the real router bootstrap.
func setupPortal(t *testing.T) *testPortal {
	t.Helper()

	gin.SetMode(gin.TestMode)

	databaseService := service.NewDatabaseService(service.DatabaseServiceConfig{
		DatabasePath: ":memory:",
	})
	assert.NilError(t, databaseService.Init())

	database := databaseService.GetDatabase()

	broker := service.NewBrokerService(service.BrokerServiceConfig{
		CodeExpiry:    config.CodeExpiry,
		SessionExpiry: config.SessionExpiry,
	}, database)

	catalog := service.NewCatalogService(service.CatalogServiceConfig{})
	assert.NilError(t, catalog.Init())

	engine := gin.New()
	engine.Use(middleware.NewContextMiddleware(broker).Middleware())

	apiRouter := engine.Group("/api")

	controller.NewAuthController(apiRouter, broker).SetupRoutes()
	controller.NewBotController(controller.BotControllerConfig{
		BotKey: testBotKey,
	}, apiRouter, broker).SetupRoutes()
	controller.NewPlayerController(apiRouter, service.NewPlayerService(database), catalog).SetupRoutes()
	controller.NewMailController(apiRouter, service.NewMailService(database)).SetupRoutes()
	controller.NewPublicController(apiRouter, service.NewPublicService(database), catalog).SetupRoutes()

	return &testPortal{
		engine:   engine,
		database: database,
		broker:   broker,
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// login issues and redeems a code, returning a live session token.
func (portal *testPortal) login(t *testing.T, userID int64, username string) string {
	t.Helper()

	code, err := portal.broker.IssueCode(t.Context(), userID, username)
	assert.NilError(t, err)

	session, err := portal.broker.Redeem(t.Context(), code)
	assert.NilError(t, err)

	return session.Token
}
