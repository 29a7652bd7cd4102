package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishIsSynchronous(t *testing.T) {
	b := New()
	var got []string
	b.Subscribe(EventFieldChanged, func(e DomainEvent) {
		got = append(got, e.(FieldChangedEvent).Value)
	})

	b.Publish(FieldChangedEvent{Field: "fruit", Value: "a"})
	b.Publish(FieldChangedEvent{Field: "fruit", Value: "b"})

	assert.Equal(t, []string{"a", "b"}, got, "handlers should run before Publish returns, in order")
}

func TestSubscribeOnlyReceivesItsType(t *testing.T) {
	b := New()
	opened := 0
	b.Subscribe(EventComboOpened, func(DomainEvent) { opened++ })

	b.Publish(ComboClosedEvent{WidgetID: "w"})
	b.Publish(ComboOpenedEvent{WidgetID: "w"})

	assert.Equal(t, 1, opened)
}

func TestUnsubscribeRemovesOnlyThatHandler(t *testing.T) {
	b := New()
	first, second := 0, 0
	unsubFirst := b.Subscribe(EventGlobalKey, func(DomainEvent) { first++ })
	b.Subscribe(EventGlobalKey, func(DomainEvent) { second++ })
	require.Equal(t, 2, SubscriberCount(b, EventGlobalKey))

	unsubFirst()
	unsubFirst()
	b.Publish(GlobalKeyEvent{Key: "esc"})

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, SubscriberCount(b, EventGlobalKey))
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	b := New()
	calls := 0
	var unsub func()
	unsub = b.Subscribe(EventPointerDown, func(DomainEvent) {
		calls++
		unsub()
	})

	b.Publish(PointerDownEvent{})
	b.Publish(PointerDownEvent{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, SubscriberCount(b, EventPointerDown))
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New()
	after := false
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { after = true })

	assert.NotPanics(t, func() { b.Publish(ErrorEvent{Message: "x"}) })
	assert.True(t, after, "later handlers should still run")
}
