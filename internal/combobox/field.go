package combobox

import (
	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// HiddenField is the backing form value a combo box writes to.
// Listeners observe it through FieldChangedEvent on the bus.
type HiddenField struct {
	name  string
	value string
	bus   eventbus.EventBus
}

// NewHiddenField creates a field holding an initial value
func NewHiddenField(name, value string, bus eventbus.EventBus) *HiddenField {
	return &HiddenField{
		name:  name,
		value: value,
		bus:   bus,
	}
}

// Name returns the form field name
func (f *HiddenField) Name() string {
	return f.name
}

// Value returns the current value
func (f *HiddenField) Value() string {
	return f.value
}

// SetValue writes the value without notifying anyone
func (f *HiddenField) SetValue(value string) {
	f.value = value
}

// DispatchChange publishes a bubbling change notification for the current value
func (f *HiddenField) DispatchChange(oldValue string) {
	if f.bus == nil {
		return
	}
	f.bus.Publish(domain.FieldChangedEvent{
		Field:    f.name,
		OldValue: oldValue,
		Value:    f.value,
		Bubbles:  true,
	})
}
