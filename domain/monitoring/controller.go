package monitoring

import (
	"context"
	"time"

	"github.com/fahicart/fahicart-web/config/router"
	"github.com/fahicart/fahicart-web/internal/log"
	"github.com/fahicart/fahicart-web/pkg/ratelimit"
)

const cachePingTimeout = 2 * time.Second

type Cache interface {
	Ping(ctx context.Context) error
}

// MailStatus reports whether mail credentials are present. It never
// exposes their values.
type MailStatus interface {
	IsConfigured() bool
}

type HealthStatus struct {
	Cache  int `json:"cache"`  // 1 = healthy, 0 = unhealthy/not configured
	Mail   int `json:"mail"`   // 1 = credentials configured, 0 = missing
	Uptime int `json:"uptime"` // uptime in seconds
}

type MonitoringController struct {
	logger    *log.Logger
	cache     Cache
	mail      MailStatus
	startTime time.Time
}

func NewMonitoringController(logger *log.Logger, cache Cache, mail MailStatus) *router.RESTController {
	ctrl := &MonitoringController{
		logger:    logger,
		cache:     cache,
		mail:      mail,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {

			controller.RateLimitWith(routerService, createMonitoringRateLimiter())

			routerService.AddGetHandler(controller, nil, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.monitor(c)
			})

			routerService.AddGetHandler(controller, nil, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})

			routerService.AddGetHandler(controller, nil, "extras/greet", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.greet(c)
			})
		},
	)
}

func createMonitoringRateLimiter() ratelimit.RateLimiter {
	const monitoringRequestsPerMinute = 10

	return ratelimit.NewRateLimiter(&ratelimit.RateLimitConfig{
		Requests: monitoringRequestsPerMinute,
		Window:   time.Minute,
	})
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")

	ctx, cancel := context.WithTimeout(c.Request.Context(), cachePingTimeout)
	defer cancel()

	return router.OKResult(ctrl.performHealthChecks(ctx, logger), "fahicart-web health check completed")
}

func (ctrl *MonitoringController) greet(
	c *router.RequestContext,
) *router.ServiceResult {
	return router.OKResult("Hello, welcome to Fahicart!", "Greeting successful")
}

func (ctrl *MonitoringController) monitor(
	c *router.RequestContext,
) *router.ServiceResult {
	return router.OKResult("Monitoring endpoint is operational.", "Monitoring successful")
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	checkCacheConnectivity(ctx, ctrl, &status, logger)
	checkMailConfiguration(ctrl, &status, logger)

	return status
}

func checkCacheConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.cache == nil {
		logger.Info("Cache not configured, cache health check skipped")
		return
	}

	if ctrl.cache.Ping(ctx) == nil {
		status.Cache = 1
		logger.Info("Cache health check passed")
	} else {
		logger.Error("Cache health check failed")
	}
}

func checkMailConfiguration(ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.mail != nil && ctrl.mail.IsConfigured() {
		status.Mail = 1
		return
	}
	logger.Warn("Mail credentials not configured")
}
