package mail

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// LogMailer writes messages to the log instead of sending them. It is the
// fallback when no SMTP host is configured, so registration codes and
// delivery codes stay visible in development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	m.logger.InfoContext(ctx, "mail not sent, no smtp server configured",
		"to", msg.To,
		"subject", msg.Subject,
		"text", msg.Text,
		"html", msg.HTML != "",
	)
	return nil
}
