package domain

import (
	"github.com/fahicart/fahicart-web/config"
	"github.com/fahicart/fahicart-web/domain/contact"
	"github.com/fahicart/fahicart-web/domain/monitoring"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.Logger, appConfig.Cache, appConfig.Mail))
	appConfig.RouterService.MountController(contact.NewContactController(appConfig.Logger, ContactControllerConfig(appConfig)))
}

// ContactControllerConfig picks the contact endpoint's settings out of the
// application configuration.
func ContactControllerConfig(appConfig *config.ApplicationConfig) contact.ControllerConfig {
	return contact.ControllerConfig{
		Mail:              appConfig.Mail,
		Sender:            appConfig.Mailer,
		RateLimitRequests: appConfig.Contact.RateLimitRequests,
		RateLimitWindow:   appConfig.Contact.RateLimitWindow,
		SendTimeout:       appConfig.Mail.SendTimeout,
	}
}
