package page

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// ErrAlreadyMounted is returned when a widget id is mounted twice
var ErrAlreadyMounted = errors.New("page: widget already mounted")

// Widget is anything that can live on a page and listen to page-level input
type Widget interface {
	ID() string
	// HandleClick receives presses that landed inside the widget.
	// Returning true stops the press from reaching page-level listeners.
	HandleClick(target domain.Target) bool
	// HandlePointer is the page-level pointer listener
	HandlePointer(target domain.Target)
	// HandleGlobalKey is the page-level key listener
	HandleGlobalKey(key string)
}

type mount struct {
	widget      Widget
	unsubscribe []func()
}

// Page is the set of widgets mounted on one screen. Each mount owns its
// page-level subscriptions and drops them on Unmount.
type Page struct {
	mu     sync.Mutex
	bus    eventbus.EventBus
	mounts map[string]*mount
	order  []string
}

// New creates an empty page on the given bus
func New(bus eventbus.EventBus) *Page {
	return &Page{
		bus:    bus,
		mounts: make(map[string]*mount),
	}
}

// Mount registers a widget and subscribes its page-level listeners
func (p *Page) Mount(w Widget) error {
	p.mu.Lock()
	id := w.ID()
	if _, exists := p.mounts[id]; exists {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyMounted, id)
	}

	m := &mount{widget: w}
	m.unsubscribe = append(m.unsubscribe,
		p.bus.Subscribe(eventbus.EventPointerDown, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.PointerDownEvent); ok {
				w.HandlePointer(ev.Target)
			}
		}),
		p.bus.Subscribe(eventbus.EventGlobalKey, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.GlobalKeyEvent); ok {
				w.HandleGlobalKey(ev.Key)
			}
		}),
	)
	p.mounts[id] = m
	p.order = append(p.order, id)
	p.mu.Unlock()

	p.bus.Publish(eventbus.WidgetMountedEvent{WidgetID: id})
	return nil
}

// Unmount removes a widget and tears down its listeners.
// Unknown ids are ignored.
func (p *Page) Unmount(id string) {
	p.mu.Lock()
	m, ok := p.mounts[id]
	if !ok {
		p.mu.Unlock()
		return
	}
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	delete(p.mounts, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i:i], p.order[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	p.bus.Publish(eventbus.WidgetUnmountedEvent{WidgetID: id})
}

// UnmountAll removes every widget, last mounted first
func (p *Page) UnmountAll() {
	ids := p.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		p.Unmount(ids[i])
	}
	log.Printf("page: unmounted %d widgets", len(ids))
}

// IDs returns mounted widget ids in mount order
func (p *Page) IDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.order...)
}

// Len returns the number of mounted widgets
func (p *Page) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.mounts)
}

// DispatchPointer delivers a press: first to the widget it landed in, then,
// unless that widget stopped it, to every page-level pointer listener.
func (p *Page) DispatchPointer(target domain.Target) {
	p.mu.Lock()
	m, ok := p.mounts[target.WidgetID]
	p.mu.Unlock()

	if ok && m.widget.HandleClick(target) {
		return
	}
	p.bus.Publish(eventbus.PointerDownEvent{Target: target})
}

// DispatchKey delivers a key press to every page-level key listener
func (p *Page) DispatchKey(key string) {
	p.bus.Publish(eventbus.GlobalKeyEvent{Key: key})
}
