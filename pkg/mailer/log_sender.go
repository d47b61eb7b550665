package mailer

import (
	"context"

	"github.com/fahicart/fahicart-web/internal/log"
)

// LogSender records messages in the log instead of delivering them.
type LogSender struct {
	logger *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	return &LogSender{logger: logger.WithComponent("mailer")}
}

func (s *LogSender) Send(ctx context.Context, message *Message) error {
	log.GetLoggerInstanceFromContext(ctx, s.logger).Info("Mail delivery skipped (MAIL_DRIVER=log)",
		"from", message.From,
		"to", message.To,
		"subject", message.Subject,
		"text_bytes", len(message.Text),
		"html_bytes", len(message.HTML),
	)
	return nil
}
