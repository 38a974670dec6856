package events

import (
	"time"
)

// DomainEvent is the contract every domain event satisfies so the
// dispatcher can route it by type.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
}

// BaseEvent carries the fields shared by all events; concrete events
// embed it and add their own payload.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e BaseEvent) GetAggregateID() string { return e.AggregateID }

func (e BaseEvent) GetEventType() string { return e.EventType }

func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// EventHandler consumes events the dispatcher delivers. CanHandle lets a
// handler registered for several types opt out per event.
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

// EventPublisher is the side use cases depend on.
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber is the side consumers like the notification
// subscriber depend on.
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventDispatcher is the full dispatcher lifecycle owned by the server
// command.
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	Start() error
	Stop() error
}
