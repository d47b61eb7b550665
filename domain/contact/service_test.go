package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fahicart/fahicart-web/config"
	"github.com/fahicart/fahicart-web/internal/log"
	apperrors "github.com/fahicart/fahicart-web/pkg/errors"
	"github.com/fahicart/fahicart-web/pkg/mailer"
	"github.com/fahicart/fahicart-web/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func configuredMail() *config.MailConfig {
	return &config.MailConfig{
		User:     "site@example.com",
		Password: "app-password",
		To:       "inbox@example.com",
	}
}

func newTestService(t *testing.T, mail MailSettings) (ContactService, *mailer.MockSender) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sender := mailer.NewMockSender(ctrl)
	limiter := ratelimit.NewFixedWindowRateLimiter(5, time.Hour)

	return NewContactService(log.NewLoggerWithJSONOutput(), limiter, mail, sender, time.Second), sender
}

func TestContactService_Admit(t *testing.T) {
	service, _ := newTestService(t, configuredMail())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, service.Admit(ctx, "203.0.113.7"), "submission %d", i+1)
	}

	err := service.Admit(ctx, "203.0.113.7")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRateLimitExceeded))
	assert.Equal(t, 429, apperrors.HTTPStatusCode(err))
	assert.Equal(t, "Too many requests. Please try again later.", apperrors.GetHumanReadableMessage(err))

	assert.NoError(t, service.Admit(ctx, "198.51.100.2"))
}

func TestContactService_SubmitInquiry(t *testing.T) {
	ctx := context.Background()

	t.Run("sends one message from the sender account to the destination", func(t *testing.T) {
		service, sender := newTestService(t, configuredMail())

		sender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msg *mailer.Message) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				assert.Equal(t, "site@example.com", msg.From)
				assert.Equal(t, "inbox@example.com", msg.To)
				assert.Equal(t, "New Contact Form Submission from Aisha Ibrahim", msg.Subject)
				assert.Contains(t, msg.HTML, "mailto:aisha@example.com")
				assert.Contains(t, msg.Text, "I would like a quote for a website.")
				return nil
			}).
			Times(1)

		assert.NoError(t, service.SubmitInquiry(ctx, validRequest()))
	})

	t.Run("validation failure never dispatches", func(t *testing.T) {
		service, _ := newTestService(t, configuredMail())

		req := validRequest()
		req.Email = "nope"

		err := service.SubmitInquiry(ctx, req)
		require.Error(t, err)
		assert.Equal(t, 400, apperrors.HTTPStatusCode(err))
		assert.Equal(t, "Invalid email address", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("missing credentials never dispatch", func(t *testing.T) {
		mail := configuredMail()
		mail.Password = ""
		service, _ := newTestService(t, mail)

		err := service.SubmitInquiry(ctx, validRequest())
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServiceMisconfigured))
		assert.Equal(t, 500, apperrors.HTTPStatusCode(err))
		assert.Equal(t, "Email service not configured. Please contact support.", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("validation runs before the configuration check", func(t *testing.T) {
		service, _ := newTestService(t, &config.MailConfig{})

		err := service.SubmitInquiry(ctx, &SubmitInquiryRequest{})
		assert.Equal(t, "All fields are required", apperrors.GetHumanReadableMessage(err))
	})

	t.Run("dispatch failure hides the transport error", func(t *testing.T) {
		service, sender := newTestService(t, configuredMail())

		sender.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(errors.New("535 5.7.8 Username and Password not accepted")).
			Times(1)

		err := service.SubmitInquiry(ctx, validRequest())
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDispatchFailed))
		assert.Equal(t, 500, apperrors.HTTPStatusCode(err))
		assert.Equal(t,
			"Failed to send message. Please try again or contact us directly at fahicartmv@gmail.com",
			apperrors.GetHumanReadableMessage(err))
	})
}
