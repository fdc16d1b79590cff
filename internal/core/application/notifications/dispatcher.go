// Package notifications turns committed domain events into customer e-mails.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

const (
	registrationSubject = "Verify your TrendWear Account"
	rentalSubject       = "Rental Update: %s"
)

// Dispatcher implements ports.EventPublisher. Each published batch is mailed
// on its own goroutine; failures are logged and never reach the caller.
type Dispatcher struct {
	directory ports.RecipientDirectory
	mailer    ports.Mailer
	logger    *slog.Logger
	wg        sync.WaitGroup
}

func NewDispatcher(directory ports.RecipientDirectory, mailer ports.Mailer, logger *slog.Logger) (*Dispatcher, error) {
	if directory == nil {
		return nil, errors.New("recipient directory is required")
	}
	if mailer == nil {
		return nil, errors.New("mailer is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{directory: directory, mailer: mailer, logger: logger}, nil
}

func (d *Dispatcher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for _, event := range events {
			if err := d.notify(ctx, event); err != nil {
				d.logger.ErrorContext(ctx, "notification failed",
					"event", event.EventName(),
					"aggregate_id", event.AggregateID().String(),
					"error", err)
			}
		}
	}()
	return nil
}

// Wait blocks until every batch published so far has been handled.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// SendRegistrationCode mails a sign-up verification code. Unlike event
// notifications it is synchronous: registration fails when the mail does.
func (d *Dispatcher) SendRegistrationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	text, err := renderText("registration", registrationData{Code: code, ExpiresAt: expiresAt})
	if err != nil {
		return err
	}
	return d.mailer.Send(ctx, ports.MailMessage{To: email, Subject: registrationSubject, Text: text})
}

func (d *Dispatcher) notify(ctx context.Context, event kernel.DomainEvent) error {
	switch e := event.(type) {
	case delivery.DeliveryCodeIssued:
		return d.deliveryCode(ctx, e)
	case delivery.DeliveryStatusChanged:
		switch e.To {
		case delivery.StatusDelivered:
			return d.invoice(ctx, e.OrderID)
		case delivery.StatusFailed:
			return d.failed(ctx, e.OrderID)
		}
	case order.RentBookingStatusChanged:
		switch e.To {
		case order.RentShipped:
			return d.rental(ctx, "shipped", e)
		case order.RentOverdue:
			return d.rental(ctx, "overdue", e)
		}
	}
	return nil
}

func (d *Dispatcher) deliveryCode(ctx context.Context, e delivery.DeliveryCodeIssued) error {
	recipient, err := d.directory.Recipient(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if recipient.Email == "" {
		return nil
	}
	text, err := renderText("code", codeData{Recipient: recipient, Code: e.Code, Reissued: e.Reissued})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Order #%s Update: Out for Delivery", e.OrderID)
	if e.Reissued {
		subject = "Delivery code: " + e.Code
	}
	return d.mailer.Send(ctx, ports.MailMessage{To: recipient.Email, Subject: subject, Text: text})
}

func (d *Dispatcher) invoice(ctx context.Context, orderID kernel.UUID) error {
	invoice, err := d.directory.Invoice(ctx, orderID)
	if err != nil {
		return err
	}
	if invoice.Email == "" {
		return nil
	}
	text, err := renderText("invoice", invoice)
	if err != nil {
		return err
	}
	html, err := renderInvoiceHTML(invoice)
	if err != nil {
		return err
	}
	return d.mailer.Send(ctx, ports.MailMessage{
		To:      invoice.Email,
		Subject: fmt.Sprintf("Receipt for Order #%s - Delivered", orderID),
		Text:    text,
		HTML:    html,
	})
}

func (d *Dispatcher) failed(ctx context.Context, orderID kernel.UUID) error {
	recipient, err := d.directory.Recipient(ctx, orderID)
	if err != nil {
		return err
	}
	if recipient.Email == "" {
		return nil
	}
	text, err := renderText("failed", recipient)
	if err != nil {
		return err
	}
	return d.mailer.Send(ctx, ports.MailMessage{
		To:      recipient.Email,
		Subject: fmt.Sprintf("Order #%s Update: Failed", orderID),
		Text:    text,
	})
}

func (d *Dispatcher) rental(ctx context.Context, tmpl string, e order.RentBookingStatusChanged) error {
	recipient, err := d.directory.Recipient(ctx, e.AggregateID())
	if err != nil {
		return err
	}
	if recipient.Email == "" {
		return nil
	}
	item, err := d.directory.BookingItem(ctx, e.BookingID)
	if err != nil {
		return err
	}
	text, err := renderText(tmpl, rentalData{Recipient: recipient, Item: item})
	if err != nil {
		return err
	}
	return d.mailer.Send(ctx, ports.MailMessage{
		To:      recipient.Email,
		Subject: fmt.Sprintf(rentalSubject, item),
		Text:    text,
	})
}
