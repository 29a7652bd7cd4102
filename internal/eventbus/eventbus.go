package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"typeahead/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventComboOpened        = domain.EventComboOpened
	EventComboClosed        = domain.EventComboClosed
	EventSearchChanged      = domain.EventSearchChanged
	EventHighlightMoved     = domain.EventHighlightMoved
	EventSelectionCommitted = domain.EventSelectionCommitted
	EventFieldChanged       = domain.EventFieldChanged
	EventPointerDown        = domain.EventPointerDown
	EventGlobalKey          = domain.EventGlobalKey
	EventWidgetMounted      = domain.EventWidgetMounted
	EventWidgetUnmounted    = domain.EventWidgetUnmounted
	EventConfigChanged      = domain.EventConfigChanged
	EventError              = domain.EventError
)

// Re-export domain event types
type ComboOpenedEvent = domain.ComboOpenedEvent
type ComboClosedEvent = domain.ComboClosedEvent
type SearchChangedEvent = domain.SearchChangedEvent
type HighlightMovedEvent = domain.HighlightMovedEvent
type SelectionCommittedEvent = domain.SelectionCommittedEvent
type FieldChangedEvent = domain.FieldChangedEvent
type PointerDownEvent = domain.PointerDownEvent
type GlobalKeyEvent = domain.GlobalKeyEvent
type WidgetMountedEvent = domain.WidgetMountedEvent
type WidgetUnmountedEvent = domain.WidgetUnmountedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run synchronously inside Publish, in subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all current subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventSearchChanged, EventHighlightMoved, EventPointerDown, EventGlobalKey:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Copy so handlers may subscribe or unsubscribe while we iterate
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	handlersCopy := make([]EventHandler, len(subs))
	for i, s := range subs {
		handlersCopy[i] = s.handler
	}
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		b.call(handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function; calling it more than once is harmless
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
			if len(b.handlers[eventType]) == 0 {
				delete(b.handlers, eventType)
			}
		})
	}
}

// SubscriberCount returns the number of live subscriptions for an event type
func SubscriberCount(eb EventBus, eventType EventType) int {
	b, ok := eb.(*bus)
	if !ok {
		return -1
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
