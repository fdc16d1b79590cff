// Package kafka publishes committed order and delivery state changes to the
// order-changed topic so downstream services can follow an order's lifecycle.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer is the part of *kgo.Client the publisher needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// OrderChangedEvent is the JSON value of every record. Records are keyed by
// order ID so one order's changes stay in partition order. Delivery codes are
// never published.
type OrderChangedEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
	LineID     string    `json:"line_id,omitempty"`
	AgentID    string    `json:"agent_id,omitempty"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to,omitempty"`
	Total      string    `json:"total,omitempty"`
}

type OrderChangedPublisher struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

func NewOrderChangedPublisher(producer Producer, topic string, logger *slog.Logger) *OrderChangedPublisher {
	return &OrderChangedPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish produces one record per known event and waits for the broker to
// acknowledge them. Unknown events are skipped.
func (p *OrderChangedPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	records := make([]*kgo.Record, 0, len(events))
	for _, event := range events {
		msg, ok := toOrderChangedEvent(event)
		if !ok {
			continue
		}
		value, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("encode %s: %w", event.EventName(), err)
		}
		records = append(records, &kgo.Record{
			Topic: p.topic,
			Key:   []byte(msg.OrderID),
			Value: value,
		})
	}
	if len(records) == 0 {
		return nil
	}

	if err := p.producer.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", p.topic, err)
	}
	p.logger.DebugContext(ctx, "order changes published", "topic", p.topic, "records", len(records))
	return nil
}

func toOrderChangedEvent(event kernel.DomainEvent) (OrderChangedEvent, bool) {
	msg := OrderChangedEvent{
		ID:         event.EventID().String(),
		Name:       event.EventName(),
		OrderID:    event.AggregateID().String(),
		OccurredAt: event.OccurredAt(),
	}

	switch e := event.(type) {
	case order.OrderPlaced:
		msg.Total = e.Total.String()
	case order.SaleItemStatusChanged:
		msg.LineID = e.ItemID.String()
		msg.From, msg.To = e.From.String(), e.To.String()
	case order.RentBookingStatusChanged:
		msg.LineID = e.BookingID.String()
		msg.From, msg.To = e.From.String(), e.To.String()
	case delivery.DeliveryStatusChanged:
		msg.OrderID = e.OrderID.String()
		msg.AgentID = agentID(e.AgentID)
		msg.From, msg.To = e.From.String(), e.To.String()
	case delivery.DeliveryCodeIssued:
		msg.OrderID = e.OrderID.String()
		msg.AgentID = agentID(e.AgentID)
	default:
		return OrderChangedEvent{}, false
	}
	return msg, true
}

func agentID(id kernel.UUID) string {
	if id.Validate() != nil {
		return ""
	}
	return id.String()
}
