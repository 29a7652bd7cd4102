package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/combobox"
	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/input"
	"typeahead/internal/ui/input/types"
)

// widget hosts one combo box: it is the controller's View and the input
// handler's Context, and owns the scroll window of the option panel.
type widget struct {
	spec       config.FieldSpec
	ctrl       *combobox.Controller
	input      *input.Handler
	offset     int
	maxVisible int
	pending    []tea.Cmd
}

func newWidget(spec config.FieldSpec, bus eventbus.EventBus, ui config.UISettings) (*widget, error) {
	w := &widget{
		spec:       spec,
		input:      input.New("type to filter"),
		maxVisible: ui.MaxVisible,
	}
	w.input.SetWidth(ui.Width - 3)

	ctrl, err := combobox.New(spec.Name, combobox.Markup{
		Field:   combobox.NewHiddenField(spec.Name, spec.Value, bus),
		Options: OptionElements(spec),
	}, bus, w)
	if err != nil {
		return nil, err
	}
	w.ctrl = ctrl
	return w, nil
}

// OptionElements converts a field's configured options into combo box markup
func OptionElements(spec config.FieldSpec) []combobox.OptionElement {
	elements := make([]combobox.OptionElement, 0, len(spec.Options))
	for _, o := range spec.Options {
		elements = append(elements, combobox.OptionElement{Value: o.Value, Text: o.Label, Disabled: o.Disabled})
	}
	return elements
}

func (w *widget) WidgetID() string { return w.spec.Name }

func (w *widget) IsOpen() bool { return w.ctrl != nil && w.ctrl.IsOpen() }

func (w *widget) label() string {
	if w.spec.Label != "" {
		return w.spec.Label
	}
	return w.spec.Name
}

// FocusSearch moves keyboard input into the search box of a freshly opened panel
func (w *widget) FocusSearch() {
	w.offset = 0
	_, cmd := w.input.ChangeMode(types.ModeOpen, w)
	w.queue(cmd)
}

// FocusToggle returns keyboard input to the toggle button
func (w *widget) FocusToggle() {
	_, cmd := w.input.ChangeMode(types.ModeClosed, w)
	w.queue(cmd)
}

// ScrollIntoView moves the window the least amount that shows row vi
func (w *widget) ScrollIntoView(vi int) {
	if w.maxVisible <= 0 {
		return
	}
	if vi < w.offset {
		w.offset = vi
	} else if vi >= w.offset+w.maxVisible {
		w.offset = vi - w.maxVisible + 1
	}
}

func (w *widget) queue(cmd tea.Cmd) {
	if cmd != nil {
		w.pending = append(w.pending, cmd)
	}
}

func (w *widget) drain() []tea.Cmd {
	cmds := w.pending
	w.pending = nil
	return cmds
}
