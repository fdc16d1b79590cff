// Package mail delivers notification e-mails, over SMTP in production and to
// the structured log when no SMTP server is configured.
package mail

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	gomail "github.com/wneessen/go-mail"
)

const sendTimeout = 15 * time.Second

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends each message over its own connection, upgrading to TLS
// when the server offers STARTTLS.
type SMTPMailer struct {
	host    string
	from    string
	options []gomail.Option
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, errs.NewValueIsRequiredError("smtp host")
	}
	if err := gomail.NewMsg().From(cfg.From); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("smtp from", err)
	}

	options := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	}
	if cfg.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	// Fail on a bad port at startup rather than on the first send.
	if _, err := gomail.NewClient(cfg.Host, options...); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("smtp config", err)
	}

	return &SMTPMailer{host: cfg.Host, from: cfg.From, options: options}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	message, err := newMessage(m.from, msg, time.Now())
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.host, m.options...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err = client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

// newMessage renders a text-only message as a single text/plain part. With
// HTML it becomes multipart/alternative with the text part first.
func newMessage(from string, msg ports.MailMessage, now time.Time) (*gomail.Msg, error) {
	message := gomail.NewMsg()
	if err := message.From(from); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("smtp from", err)
	}
	if err := message.To(msg.To); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipient", err)
	}
	message.Subject(msg.Subject)
	message.SetDateWithValue(now)

	message.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		message.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return message, nil
}
