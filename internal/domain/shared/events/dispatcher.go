package events

import (
	"fmt"
	"log/slog"
	"sync"
)

const defaultBufferSize = 100

// InMemoryEventDispatcher fans events out to registered handlers on a
// single background goroutine. Mutation use cases publish after their
// transaction commits, so delivery never affects persistence.
type InMemoryEventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	running  bool

	eventCh chan DomainEvent
	stopCh  chan struct{}
	done    sync.WaitGroup
}

func NewInMemoryEventDispatcher(bufferSize int) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		eventCh:  make(chan DomainEvent, bufferSize),
		stopCh:   make(chan struct{}),
	}
}

// Publish enqueues an event for asynchronous delivery. It never blocks;
// a full buffer is reported as an error instead.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event buffer full, dropping %s", event.GetEventType())
	}
}

// PublishAll enqueues events in order, stopping at the first failure.
func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return err
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryEventDispatcher) Unsubscribe(eventType string, handler EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	remaining := d.handlers[eventType][:0:0]
	for _, h := range d.handlers[eventType] {
		if h != handler {
			remaining = append(remaining, h)
		}
	}
	if len(remaining) == 0 {
		delete(d.handlers, eventType)
	} else {
		d.handlers[eventType] = remaining
	}
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}
	d.running = true

	d.done.Add(1)
	go d.loop()
	return nil
}

// Stop shuts the delivery loop down after draining buffered events.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.done.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) loop() {
	defer d.done.Done()
	for {
		select {
		case event := <-d.eventCh:
			d.dispatch(event)
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (d *InMemoryEventDispatcher) dispatch(event DomainEvent) {
	eventType := event.GetEventType()

	d.mu.RLock()
	handlers := make([]EventHandler, len(d.handlers[eventType]))
	copy(handlers, d.handlers[eventType])
	d.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(eventType) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			slog.Error("event handler failed",
				"event_type", eventType,
				"aggregate_id", event.GetAggregateID(),
				"error", err)
		}
	}
}
