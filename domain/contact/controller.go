package contact

import (
	"net/http"
	"time"

	"github.com/fahicart/fahicart-web/config/router"
	"github.com/fahicart/fahicart-web/internal/log"
	apperrors "github.com/fahicart/fahicart-web/pkg/errors"
	"github.com/fahicart/fahicart-web/pkg/mailer"
	"github.com/fahicart/fahicart-web/pkg/ratelimit"
)

// ControllerConfig carries what the contact controller needs from the
// application configuration.
type ControllerConfig struct {
	Mail              MailSettings
	Sender            mailer.Sender
	RateLimitRequests int
	RateLimitWindow   time.Duration
	SendTimeout       time.Duration
}

// NewContactController mounts POST /api/contact. The per-identity limiter is
// created here, so it lives as long as the mounted controller.
func NewContactController(logger *log.Logger, cfg ControllerConfig) *router.RESTController {
	return router.NewRESTController(
		"ContactController",
		"/api/contact",
		func(rs *router.RouterService, c *router.RESTController) {
			limiter := ratelimit.NewFixedWindowRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
			service := NewContactService(logger, limiter, cfg.Mail, cfg.Sender, cfg.SendTimeout)
			metrics := newInquiryMetrics(rs.MetricsRegistry())

			rs.AddPostHandler(c, nil, "", submitInquiryHandler(service, metrics))
			rs.DeferBodyLimit(c, http.MethodPost, "")
		},
	)
}

func submitInquiryHandler(service ContactService, metrics *inquiryMetrics) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)
		reqCtx := ctx.Request.Context()

		// The quota is charged before the body is read.
		if err := service.Admit(reqCtx, ResolveIdentity(ctx.Request.Header)); err != nil {
			return respondWithError(metrics, err)
		}

		// Reading past the router's body cap fails here, after the quota is charged.
		raw, err := ctx.GetRawData()
		if err != nil {
			logger.Error("Contact form error", "error", err)
			return respondWithError(metrics, apperrors.NewMalformedRequestBodyError(FailureMessage, err))
		}

		req, err := decodeSubmission(raw)
		if err != nil {
			logger.Error("Contact form error", "error", err)
			return respondWithError(metrics, apperrors.NewMalformedRequestBodyError(FailureMessage, err))
		}

		if err := service.SubmitInquiry(reqCtx, req); err != nil {
			return respondWithError(metrics, err)
		}

		metrics.record(nil)
		return router.OKResult(nil, SuccessMessage)
	}
}

func respondWithError(metrics *inquiryMetrics, err error) *router.ServiceResult {
	metrics.record(err)
	return router.ErrorResult(
		apperrors.HTTPStatusCode(err),
		apperrors.GetHumanReadableMessage(err),
		nil,
	)
}
