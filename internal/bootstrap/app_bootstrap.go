package bootstrap

import (
	"context"
	"fmt"

	"campportal/internal/config"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type BootstrapApp struct {
	config  config.Config
	context struct {
		instanceID string
	}
	services Services
}

func NewBootstrapApp(config config.Config) *BootstrapApp {
	return &BootstrapApp{
		config: config,
	}
}

func (app *BootstrapApp) Setup() error {
	app.context.instanceID = uuid.NewString()

	log.Trace().Interface("config", app.config).Msg("Config dump")
	log.Debug().Str("instance", app.context.instanceID).Msg("Instance ID")

	services, err := app.initServices()

	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	app.services = services

	router, err := app.setupRouter()

	if err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	// Credential sweep: once at startup, then every 10 minutes. The
	// broker also purges opportunistically so this is cleanliness, not
	// correctness.
	log.Debug().Msg("Starting credential sweep schedule")

	scheduler := cron.New()

	_, err = scheduler.AddFunc("@every 10m", func() {
		app.services.brokerService.Sweep(context.Background())
	})

	if err != nil {
		return fmt.Errorf("failed to schedule credential sweep: %w", err)
	}

	scheduler.Start()

	go app.services.brokerService.Sweep(context.Background())

	address := fmt.Sprintf("%s:%d", app.config.Address, app.config.Port)
	log.Info().Msgf("Starting server on %s", address)
	if err := router.Run(address); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}

	return nil
}
