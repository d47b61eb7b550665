package contact

import (
	"github.com/fahicart/fahicart-web/config/router"
	"github.com/fahicart/fahicart-web/internal/log"
	"github.com/fahicart/fahicart-web/pkg/ratelimit"
)

type ContactServiceFactory interface {
	CreateService() ContactService
	CreateController() *router.RESTController
}

type DefaultContactServiceFactory struct {
	logger *log.Logger
	config ControllerConfig
}

func NewContactServiceFactory(logger *log.Logger, config ControllerConfig) ContactServiceFactory {
	return &DefaultContactServiceFactory{
		logger: logger,
		config: config,
	}
}

// CreateService returns a service with its own limiter, independent of any
// mounted controller.
func (f *DefaultContactServiceFactory) CreateService() ContactService {
	limiter := ratelimit.NewFixedWindowRateLimiter(f.config.RateLimitRequests, f.config.RateLimitWindow)
	return NewContactService(f.logger, limiter, f.config.Mail, f.config.Sender, f.config.SendTimeout)
}

func (f *DefaultContactServiceFactory) CreateController() *router.RESTController {
	return NewContactController(f.logger, f.config)
}
