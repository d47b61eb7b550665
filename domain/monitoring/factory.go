package monitoring

import (
	"github.com/fahicart/fahicart-web/config/router"
	"github.com/fahicart/fahicart-web/internal/log"
)

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	logger *log.Logger
	cache  Cache
	mail   MailStatus
}

func NewMonitoringControllerFactory(logger *log.Logger, cache Cache, mail MailStatus) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		logger: logger,
		cache:  cache,
		mail:   mail,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.logger, f.cache, f.mail)
}
