package bootstrap

import (
	"campportal/internal/config"
	"campportal/internal/service"
)

type Services struct {
	databaseService *service.DatabaseService
	brokerService   *service.BrokerService
	catalogService  *service.CatalogService
	playerService   *service.PlayerService
	mailService     *service.MailService
	publicService   *service.PublicService
}

func (app *BootstrapApp) initServices() (Services, error) {
	services := Services{}

	databaseService := service.NewDatabaseService(service.DatabaseServiceConfig{
		DatabasePath: app.config.DatabasePath,
	})

	err := databaseService.Init()

	if err != nil {
		return Services{}, err
	}

	services.databaseService = databaseService
	database := databaseService.GetDatabase()

	services.brokerService = service.NewBrokerService(service.BrokerServiceConfig{
		CodeExpiry:    config.CodeExpiry,
		SessionExpiry: config.SessionExpiry,
	}, database)

	catalogService := service.NewCatalogService(service.CatalogServiceConfig{
		CatalogFile: app.config.CatalogFile,
	})

	err = catalogService.Init()

	if err != nil {
		return Services{}, err
	}

	services.catalogService = catalogService

	services.playerService = service.NewPlayerService(database)
	services.mailService = service.NewMailService(database)
	services.publicService = service.NewPublicService(database)

	return services, nil
}
