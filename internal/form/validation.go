package form

import (
	"fmt"
	"sort"
	"sync"

	"typeahead/internal/eventbus"
)

// Rule describes the constraints of one form field
type Rule struct {
	Field    string
	Label    string
	Required bool
	Allowed  []string // accepted values; empty accepts anything
}

// Validator keeps per-field validation state in sync with change notifications
type Validator struct {
	mu       sync.RWMutex
	rules    map[string]Rule
	values   map[string]string
	touched  map[string]bool
	errors   map[string]string
	unsubFn  func()
	onChange func(field string)
}

// NewValidator creates a validator and subscribes it to field changes
func NewValidator(bus eventbus.EventBus, rules []Rule) *Validator {
	v := &Validator{
		rules:   make(map[string]Rule, len(rules)),
		values:  make(map[string]string),
		touched: make(map[string]bool),
		errors:  make(map[string]string),
	}
	for _, r := range rules {
		v.rules[r.Field] = r
	}
	v.unsubFn = bus.Subscribe(eventbus.EventFieldChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FieldChangedEvent); ok {
			v.handleChange(ev)
		}
	})
	return v
}

// OnChange registers a callback run after a field was revalidated
func (v *Validator) OnChange(fn func(field string)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onChange = fn
}

// Seed records initial values without marking fields as touched
func (v *Validator) Seed(values map[string]string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for k, val := range values {
		v.values[k] = val
	}
}

func (v *Validator) handleChange(ev eventbus.FieldChangedEvent) {
	v.mu.Lock()
	v.values[ev.Field] = ev.Value
	v.touched[ev.Field] = true
	v.validateLocked(ev.Field)
	fn := v.onChange
	v.mu.Unlock()

	if fn != nil {
		fn(ev.Field)
	}
}

// ValidateAll checks every field and returns the fields in error, sorted
func (v *Validator) ValidateAll() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	var failing []string
	for name := range v.rules {
		v.touched[name] = true
		if !v.validateLocked(name) {
			failing = append(failing, name)
		}
	}
	sort.Strings(failing)
	return failing
}

func (v *Validator) validateLocked(field string) bool {
	rule, ok := v.rules[field]
	if !ok {
		return true
	}
	value := v.values[field]
	delete(v.errors, field)

	if rule.Required && value == "" {
		v.errors[field] = fmt.Sprintf("%s is required", rule.displayName())
		return false
	}
	if value != "" && len(rule.Allowed) > 0 && !contains(rule.Allowed, value) {
		v.errors[field] = fmt.Sprintf("%q is not a valid %s", value, rule.displayName())
		return false
	}
	return true
}

// Error returns the current message for a field, if it has been touched
func (v *Validator) Error(field string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.touched[field] {
		return ""
	}
	return v.errors[field]
}

// Value returns the last value seen for a field
func (v *Validator) Value(field string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.values[field]
}

// Close stops listening for change notifications
func (v *Validator) Close() {
	if v.unsubFn != nil {
		v.unsubFn()
	}
}

func (r Rule) displayName() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Field
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
