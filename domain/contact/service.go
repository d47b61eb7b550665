package contact

import (
	"context"
	"time"

	"github.com/fahicart/fahicart-web/config/router"
	"github.com/fahicart/fahicart-web/internal/log"
	apperrors "github.com/fahicart/fahicart-web/pkg/errors"
	"github.com/fahicart/fahicart-web/pkg/mailer"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/fahicart/fahicart-web/domain/contact"

// Limiter grants or denies one submission for an identity.
type Limiter interface {
	Allow(key string) bool
}

// MailSettings is the slice of mail configuration the service reads.
type MailSettings interface {
	Check() error
	MissingKeys() []string
	Sender() string
	Recipient() string
}

type ContactService interface {
	// Admit charges one submission against identity's quota.
	Admit(ctx context.Context, identity string) error

	// SubmitInquiry validates the request and relays it by email.
	SubmitInquiry(ctx context.Context, req *SubmitInquiryRequest) error
}

type contactService struct {
	logger      *log.Logger
	limiter     Limiter
	mail        MailSettings
	sender      mailer.Sender
	sendTimeout time.Duration
}

func NewContactService(logger *log.Logger, limiter Limiter, mail MailSettings, sender mailer.Sender, sendTimeout time.Duration) ContactService {
	return &contactService{
		logger:      logger,
		limiter:     limiter,
		mail:        mail,
		sender:      sender,
		sendTimeout: sendTimeout,
	}
}

func (s *contactService) Admit(ctx context.Context, identity string) error {
	if s.limiter.Allow(identity) {
		return nil
	}

	log.GetLoggerInstanceFromContext(ctx, s.logger).Warn("Contact rate limit exceeded", "identity", identity)
	return apperrors.NewRateLimitExceededError(router.TooManyRequestsMessage, nil)
}

func (s *contactService) SubmitInquiry(ctx context.Context, req *SubmitInquiryRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if err := ValidateSubmission(req); err != nil {
		logger.Info("Contact submission rejected", "reason", err.Error())
		return apperrors.NewInvalidRequestError(err.Error(), err)
	}

	if err := s.mail.Check(); err != nil {
		logger.Error("Gmail credentials not configured", "missing", s.mail.MissingKeys())
		return apperrors.NewServiceMisconfiguredError(NotConfiguredMessage, err)
	}

	rendered, err := RenderInquiry(req)
	if err != nil {
		logger.Error("Failed to render contact inquiry", "error", err)
		return apperrors.NewDispatchFailedError(FailureMessage, err)
	}

	if err := s.dispatch(ctx, rendered); err != nil {
		logger.Error("Email error", "error", err)
		return apperrors.NewDispatchFailedError(FailureMessage, err)
	}

	logger.Info("Contact inquiry sent")
	return nil
}

func (s *contactService) dispatch(ctx context.Context, rendered *RenderedInquiry) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "contact.dispatch")
	defer span.End()

	span.SetAttributes(
		attribute.Int("mail.html_bytes", len(rendered.HTML)),
		attribute.Int("mail.text_bytes", len(rendered.Text)),
	)

	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	err := s.sender.Send(ctx, &mailer.Message{
		From:    s.mail.Sender(),
		To:      s.mail.Recipient(),
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mail dispatch failed")
		return err
	}

	return nil
}
