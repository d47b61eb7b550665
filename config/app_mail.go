package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/fahicart/fahicart-web/internal/log"
	"github.com/fahicart/fahicart-web/pkg/circuitbreaker"
	"github.com/fahicart/fahicart-web/pkg/constants"
	"github.com/fahicart/fahicart-web/pkg/mailer"
	"github.com/fahicart/fahicart-web/pkg/utils"
)

const (
	MailUserKey     = "GMAIL_USER"
	MailPasswordKey = "GMAIL_APP_PASSWORD"
	MailToKey       = "GMAIL_TO"
)

// ErrMailNotConfigured is returned by MailConfig.Check when any credential is absent.
var ErrMailNotConfigured = errors.New("mail credentials not configured")

type MailConfig struct {
	User        string
	Password    string
	To          string
	Host        string
	Port        int
	SendTimeout time.Duration
	Driver      string
}

// NewMailConfig reads mail settings from the environment. Missing
// credentials are not an error here; they surface per request via Check.
func NewMailConfig() *MailConfig {
	cfg := &MailConfig{
		User:        os.Getenv(MailUserKey),
		Password:    os.Getenv(MailPasswordKey),
		To:          os.Getenv(MailToKey),
		Host:        utils.GetEnvTrimmedOrDefault("SMTP_HOST", constants.DefaultSMTPHost),
		Port:        utils.GetEnvPositiveInt("SMTP_PORT", constants.DefaultSMTPPort),
		SendTimeout: utils.GetEnvPositiveDuration("MAIL_SEND_TIMEOUT", constants.DefaultMailSendTimeout),
		Driver:      strings.ToLower(utils.GetEnvTrimmedOrDefault("MAIL_DRIVER", "smtp")),
	}

	return cfg
}

// Check reports ErrMailNotConfigured unless the sender account, its secret
// and the destination address are all set.
func (mc *MailConfig) Check() error {
	if len(mc.MissingKeys()) > 0 {
		return ErrMailNotConfigured
	}
	return nil
}

// MissingKeys names the absent credential variables, for server-side logs only.
func (mc *MailConfig) MissingKeys() []string {
	var missing []string
	if mc.User == "" {
		missing = append(missing, MailUserKey)
	}
	if mc.Password == "" {
		missing = append(missing, MailPasswordKey)
	}
	if mc.To == "" {
		missing = append(missing, MailToKey)
	}
	return missing
}

// Sender is the account inquiries are sent from.
func (mc *MailConfig) Sender() string {
	return mc.User
}

func (mc *MailConfig) Recipient() string {
	return mc.To
}

func (mc *MailConfig) IsConfigured() bool {
	return mc.Check() == nil
}

// NewSender builds the dispatch collaborator: a circuit-broken SMTP sender,
// or a LogSender when MAIL_DRIVER=log.
func (mc *MailConfig) NewSender(logger *log.Logger) mailer.Sender {
	if mc.Driver == "log" {
		logger.Warn("MAIL_DRIVER=log: contact inquiries will be logged, not emailed")
		return mailer.NewLogSender(logger)
	}

	smtp := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     mc.Host,
		Port:     mc.Port,
		Username: mc.User,
		Password: mc.Password,
		Timeout:  mc.SendTimeout,
	})

	breakerLogger := logger.WithComponent("mail_breaker")
	breaker := circuitbreaker.NewCircuitBreaker(&circuitbreaker.Config{
		FailureThreshold: 5,
		RecoveryTimeout:  time.Minute,
		SuccessThreshold: 1,
		OnStateChange: func(from, to circuitbreaker.CircuitState) {
			breakerLogger.Warn("Mail circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	})

	logger.Info("SMTP mailer configured", "host", mc.Host, "port", mc.Port, "send_timeout", mc.SendTimeout.String())
	return mailer.NewBreakerSender(smtp, breaker)
}

type ContactConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func NewContactConfig() *ContactConfig {
	return &ContactConfig{
		RateLimitRequests: utils.GetEnvPositiveInt("CONTACT_RATE_LIMIT_REQUESTS", constants.DefaultContactRateLimitRequests),
		RateLimitWindow:   utils.GetEnvPositiveDuration("CONTACT_RATE_LIMIT_WINDOW", constants.DefaultContactRateLimitWindow),
	}
}
