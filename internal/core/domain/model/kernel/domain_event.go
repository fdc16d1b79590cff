package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a state transition.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	PullDomainEvents() []DomainEvent
}

// BaseEvent carries the fields shared by every event.
type BaseEvent struct {
	id          UUID
	name        string
	aggregateID UUID
	occurredAt  time.Time
}

func NewBaseEvent(name string, aggregateID UUID, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		id:          NewUUID(),
		name:        name,
		aggregateID: aggregateID,
		occurredAt:  occurredAt.UTC(),
	}
}

func (e BaseEvent) EventID() UUID { return e.id }
func (e BaseEvent) EventName() string { return e.name }
func (e BaseEvent) AggregateID() UUID { return e.aggregateID }
func (e BaseEvent) OccurredAt() time.Time { return e.occurredAt }

// EventRecorder is embedded by aggregates. Events are handed out once.
type EventRecorder struct {
	events []DomainEvent
}

func (r *EventRecorder) Record(e DomainEvent) {
	r.events = append(r.events, e)
}

func (r *EventRecorder) PullDomainEvents() []DomainEvent {
	events := r.events
	r.events = nil
	return events
}
