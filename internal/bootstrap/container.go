package bootstrap

import (
	"log"

	"exposurelog-be/internal/config"
	"exposurelog-be/internal/controller"
	"exposurelog-be/internal/model"
	"exposurelog-be/internal/pkg/logger"
	"exposurelog-be/internal/repository/unitofwork"
	"exposurelog-be/internal/service"
	"exposurelog-be/pkg/butler"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MessageController       controller.IMessageController
	ExposureController      controller.IExposureController
	ConfigurationController controller.IConfigurationController

	// Shared infrastructure
	Log logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	if len(cfg.App.SiteID) > model.SiteIDLen {
		log.Fatalf("[FATAL] SITE_ID %q is longer than %d characters and cannot be stored", cfg.App.SiteID, model.SiteIDLen)
	}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Exposure Registries
	// Order matters: message creation searches registries in order, and the
	// registry= query parameter is a 1-based index into this slice.
	var registries []butler.Registry
	if cfg.Butler.URI1 != "" {
		registries = append(registries, butler.NewHTTPProvider(cfg.Butler.URI1))
	}
	if cfg.Butler.URI2 != "" {
		registries = append(registries, butler.NewHTTPProvider(cfg.Butler.URI2))
	}
	if len(registries) == 0 {
		log.Println("[WARN] No butler registry configured; exposure lookups will fail")
	}

	// 3. Services
	messageService := service.NewMessageService(uowFactory, registries, cfg.App.SiteID, sysLogger)
	exposureService := service.NewExposureService(registries, sysLogger)
	configurationService := service.NewConfigurationService(cfg.App.SiteID, registries)

	// 4. Controllers
	return &Container{
		MessageController:       controller.NewMessageController(messageService),
		ExposureController:      controller.NewExposureController(exposureService),
		ConfigurationController: controller.NewConfigurationController(configurationService),

		Log: sysLogger,
	}
}
