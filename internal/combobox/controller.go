package combobox

import (
	"errors"
	"log"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
)

// ErrNoField is returned when the markup carries no hidden field
var ErrNoField = errors.New("combobox: markup has no hidden field")

// View is the host side of a widget. The controller tells it where focus
// belongs and which row must be scrolled into view; it holds no state of its own.
type View interface {
	FocusSearch()
	FocusToggle()
	ScrollIntoView(visibleIndex int)
}

type nopView struct{}

func (nopView) FocusSearch()       {}
func (nopView) FocusToggle()       {}
func (nopView) ScrollIntoView(int) {}

// OptionPresentation is the derived presentation state of one registry option
type OptionPresentation struct {
	Option       domain.Option
	Visible      bool
	VisibleIndex int // -1 when hidden
	Highlighted  bool
}

// Controller is the interaction state machine of one mounted combo box
type Controller struct {
	id       string
	bus      eventbus.EventBus
	view     View
	field    *HiddenField
	registry *Registry

	displayLabel string
	state        domain.ComboState
	search       string
	visible      []domain.OptionID
	highlight    *Highlighter
}

// New binds a controller to its markup. The registry is captured here and
// never changes for the lifetime of the controller. Without a display label
// the button shows the label of the option matching the field value.
func New(id string, markup Markup, bus eventbus.EventBus, view View) (*Controller, error) {
	if markup.Field == nil {
		return nil, ErrNoField
	}
	if view == nil {
		view = nopView{}
	}

	c := &Controller{
		id:           id,
		bus:          bus,
		view:         view,
		field:        markup.Field,
		registry:     NewRegistry(markup.Options),
		displayLabel: markup.DisplayLabel,
		state:        domain.StateClosed,
		highlight:    NewHighlighter(),
	}
	if c.displayLabel == "" && c.field.Value() != "" {
		if opt, ok := c.registry.FindValue(c.field.Value()); ok {
			c.displayLabel = opt.Label
		}
	}
	c.visible = Visible("", c.registry)
	return c, nil
}

// ID returns the widget id
func (c *Controller) ID() string { return c.id }

// State returns the open/closed state
func (c *Controller) State() domain.ComboState { return c.state }

// IsOpen reports whether the option panel is open
func (c *Controller) IsOpen() bool { return c.state == domain.StateOpen }

// SearchTerm returns the current filter string
func (c *Controller) SearchTerm() string { return c.search }

// HighlightedIndex returns the highlight index into the visible set
func (c *Controller) HighlightedIndex() int { return c.highlight.Index() }

// DisplayLabel returns the label shown on the toggle button
func (c *Controller) DisplayLabel() string { return c.displayLabel }

// Value returns the backing field value
func (c *Controller) Value() string { return c.field.Value() }

// Field returns the backing field
func (c *Controller) Field() *HiddenField { return c.field }

// VisibleOptions returns the visible options in order
func (c *Controller) VisibleOptions() []domain.Option {
	out := make([]domain.Option, len(c.visible))
	for i, id := range c.visible {
		out[i] = c.registry.At(id)
	}
	return out
}

// HighlightedOption returns the highlighted option, if any
func (c *Controller) HighlightedOption() (domain.Option, bool) {
	idx := c.highlight.Index()
	if idx < 0 || idx >= len(c.visible) {
		return domain.Option{ID: domain.NoOption}, false
	}
	return c.registry.At(c.visible[idx]), true
}

// Presentation derives the per-option presentation state for rendering
func (c *Controller) Presentation() []OptionPresentation {
	out := make([]OptionPresentation, c.registry.Len())
	for i, opt := range c.registry.Options() {
		out[i] = OptionPresentation{Option: opt, VisibleIndex: -1}
	}
	hl := c.highlight.Index()
	for vi, id := range c.visible {
		out[id].Visible = true
		out[id].VisibleIndex = vi
		out[id].Highlighted = vi == hl
	}
	return out
}

// Toggle opens a closed widget and closes an open one
func (c *Controller) Toggle() {
	if c.IsOpen() {
		c.Close(domain.CloseToggle)
		return
	}
	c.Open()
}

// Open shows the panel with a fresh, unfiltered list
func (c *Controller) Open() {
	if c.IsOpen() {
		return
	}
	c.state = domain.StateOpen
	c.setSearch("")
	c.view.FocusSearch()
	c.publish(domain.ComboOpenedEvent{WidgetID: c.id})
}

// Close hides the panel. Closing a closed widget does nothing.
func (c *Controller) Close(reason domain.CloseReason) {
	if !c.IsOpen() {
		return
	}
	c.state = domain.StateClosed
	c.setSearch("")
	c.view.FocusToggle()
	c.publish(domain.ComboClosedEvent{WidgetID: c.id, Reason: reason})
}

// SetSearch applies a new filter string typed into the search field
func (c *Controller) SetSearch(term string) {
	if !c.IsOpen() {
		return
	}
	c.setSearch(term)
}

func (c *Controller) setSearch(term string) {
	c.search = term
	c.visible = Visible(term, c.registry)
	c.highlight.Reset()
	c.publish(domain.SearchChangedEvent{
		WidgetID:     c.id,
		Term:         term,
		VisibleCount: len(c.visible),
	})
}

// MoveDown advances the highlight by one visible row
func (c *Controller) MoveDown() {
	if !c.IsOpen() {
		return
	}
	old := c.highlight.Index()
	c.moved(old, c.highlight.Down(len(c.visible)))
}

// MoveUp moves the highlight back by one visible row
func (c *Controller) MoveUp() {
	if !c.IsOpen() {
		return
	}
	old := c.highlight.Index()
	c.moved(old, c.highlight.Up())
}

func (c *Controller) moved(old, idx int) {
	if idx >= 0 {
		c.view.ScrollIntoView(idx)
	}
	if old != idx {
		c.publish(domain.HighlightMovedEvent{WidgetID: c.id, OldIndex: old, NewIndex: idx})
	}
}

// HandleEnter commits the highlighted option. It returns false and leaves the
// panel open when nothing committable is highlighted.
func (c *Controller) HandleEnter() bool {
	if !c.IsOpen() {
		return false
	}
	opt, ok := c.HighlightedOption()
	if !ok || opt.Disabled {
		return false
	}
	c.Select(opt.Value, opt.Label)
	return true
}

// ClickOption commits the option at a visible index. Clicks on disabled
// options and on rows that are not visible are ignored.
func (c *Controller) ClickOption(visibleIndex int) bool {
	if !c.IsOpen() || visibleIndex < 0 || visibleIndex >= len(c.visible) {
		return false
	}
	opt := c.registry.At(c.visible[visibleIndex])
	if opt.Disabled {
		return false
	}
	c.Select(opt.Value, opt.Label)
	return true
}

// Select writes value to the backing field, shows label on the button,
// notifies change listeners and closes the panel.
func (c *Controller) Select(value, label string) {
	old := c.field.Value()
	c.field.SetValue(value)
	c.displayLabel = label
	c.field.DispatchChange(old)
	c.publish(domain.SelectionCommittedEvent{WidgetID: c.id, Value: value, Label: label})
	log.Printf("combobox %s: committed %q", c.id, value)

	c.Close(domain.CloseCommit)
}

// HandleKey handles a key pressed in the search field.
// It returns true when the key belongs to the widget.
func (c *Controller) HandleKey(key string) bool {
	if !c.IsOpen() {
		return false
	}
	switch key {
	case "down":
		c.MoveDown()
	case "up":
		c.MoveUp()
	case "enter":
		c.HandleEnter()
	case "esc":
		c.Close(domain.CloseEscape)
	default:
		return false
	}
	return true
}

// HandleClick handles a pointer press inside the widget.
// It returns true when the press must not reach page-level listeners.
func (c *Controller) HandleClick(target domain.Target) bool {
	switch target.Part {
	case domain.PartToggle:
		c.Toggle()
		return true
	case domain.PartSearch:
		return true
	case domain.PartOption:
		c.ClickOption(target.Index)
	}
	return false
}

// HandlePointer is the page-level pointer listener: presses outside the
// widget close an open panel.
func (c *Controller) HandlePointer(target domain.Target) {
	if c.IsOpen() && !target.Within(c.id) {
		c.Close(domain.CloseOutside)
	}
}

// HandleGlobalKey is the page-level key listener
func (c *Controller) HandleGlobalKey(key string) {
	if key == "esc" && c.IsOpen() {
		c.Close(domain.CloseEscape)
	}
}

func (c *Controller) publish(e domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
