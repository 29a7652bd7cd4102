package combobox

import (
	"strings"

	"typeahead/internal/domain"
)

// OptionElement is one rendered option as handed over by the host markup
type OptionElement struct {
	Value    string // value data attribute
	Text     string // visible text content; the label is its trimmed form
	Disabled bool
}

// Markup describes a rendered widget: the pieces a controller binds to at mount
type Markup struct {
	Field        *HiddenField
	DisplayLabel string
	Options      []OptionElement
}

// Registry is the immutable, ordered option snapshot of one mount
type Registry struct {
	options []domain.Option
}

// NewRegistry captures the option elements in document order
func NewRegistry(elements []OptionElement) *Registry {
	options := make([]domain.Option, len(elements))
	for i, el := range elements {
		options[i] = domain.Option{
			ID:       domain.OptionID(i),
			Value:    el.Value,
			Label:    strings.TrimSpace(el.Text),
			Disabled: el.Disabled,
		}
	}
	return &Registry{options: options}
}

// Len returns the number of options
func (r *Registry) Len() int {
	return len(r.options)
}

// At returns the option with the given id
func (r *Registry) At(id domain.OptionID) domain.Option {
	return r.options[id]
}

// Options returns a copy of all options in registry order
func (r *Registry) Options() []domain.Option {
	return append([]domain.Option(nil), r.options...)
}

// FindValue returns the first option carrying value
func (r *Registry) FindValue(value string) (domain.Option, bool) {
	for _, opt := range r.options {
		if opt.Value == value {
			return opt, true
		}
	}
	return domain.Option{ID: domain.NoOption}, false
}
