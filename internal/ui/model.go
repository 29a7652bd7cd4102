package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/combobox"
	"typeahead/internal/config"
	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/form"
	"typeahead/internal/page"
	"typeahead/internal/ui/input/types"
	"typeahead/internal/ui/mouse"
	"typeahead/internal/ui/views"
)

// Model represents the UI state of one form
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	page      *page.Page
	validator *form.Validator
	widgets   []*widget
	focus     int
	unsub     func()

	width  int
	height int
	help   help.Model
	keys   types.KeyMap

	renderer *views.Renderer
	hits     *mouse.HitMap

	statusMessage string
	statusIsError bool
	submitted     bool
	result        map[string]string
}

// NewModel creates a new UI model and mounts one widget per configured field
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	m := &Model{
		bus:      bus,
		page:     page.New(bus),
		help:     help.New(),
		keys:     types.DefaultKeyMap(),
		renderer: views.NewRenderer(),
		hits:     mouse.NewHitMap(),
	}
	if err := m.build(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) build(cfg *config.Config) error {
	widgets := make([]*widget, 0, len(cfg.Fields))
	rules := make([]form.Rule, 0, len(cfg.Fields))
	for _, spec := range cfg.Fields {
		w, err := newWidget(spec, m.bus, cfg.UISettings)
		if err != nil {
			return fmt.Errorf("field %s: %w", spec.Name, err)
		}
		widgets = append(widgets, w)
		rules = append(rules, ruleFor(spec))
	}

	for _, w := range widgets {
		if err := m.page.Mount(w.ctrl); err != nil {
			m.page.UnmountAll()
			return err
		}
	}

	log.Printf("Mounted %d widgets for %q", m.page.Len(), cfg.Title)
	m.config = cfg
	m.widgets = widgets
	m.validator = form.NewValidator(m.bus, rules)
	m.validator.Seed(cfg.Values())
	m.unsub = m.bus.Subscribe(eventbus.EventSelectionCommitted, m.onCommitted)
	if m.focus >= len(m.widgets) {
		m.focus = 0
	}
	return nil
}

func (m *Model) teardown() {
	m.page.UnmountAll()
	if m.validator != nil {
		m.validator.Close()
	}
	if m.unsub != nil {
		m.unsub()
	}
}

func ruleFor(spec config.FieldSpec) form.Rule {
	allowed := make([]string, 0, len(spec.Options))
	for _, o := range spec.Options {
		if !o.Disabled {
			allowed = append(allowed, o.Value)
		}
	}
	return form.Rule{Field: spec.Name, Label: spec.Label, Required: spec.Required, Allowed: allowed}
}

func (m *Model) onCommitted(e eventbus.DomainEvent) {
	ev, ok := e.(eventbus.SelectionCommittedEvent)
	if !ok {
		return
	}
	if w := m.widget(ev.WidgetID); w != nil {
		m.setStatus(fmt.Sprintf("%s: %s", w.label(), ev.Label), false)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case ReloadMsg:
		return m, m.reload(msg.Config)

	case ErrorMsg:
		log.Printf("UI error: %v", msg.Err)
		m.setStatus(msg.Err.Error(), true)
		return m, clearStatusAfter(5 * time.Second)

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	default:
		if w := m.focused(); w != nil {
			return m, w.input.Update(msg)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	w := m.focused()
	if w == nil {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return tea.Quit
		}
		return nil
	}

	actions, cmd := w.input.HandleKey(msg, w)
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(w, action))
	}

	// page-level key listeners run after the widget's own handling
	m.page.DispatchKey(msg.String())

	return tea.Batch(append(cmds, m.drainPending()...)...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UISettings.Mouse || !mouse.IsPrimaryPress(msg) {
		return nil
	}
	target := m.hits.Test(msg.X, msg.Y)
	m.page.DispatchPointer(target)
	if target.WidgetID != "" {
		m.focusWidget(target.WidgetID)
	}
	return tea.Batch(m.drainPending()...)
}

func (m *Model) processAction(w *widget, action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.ToggleAction:
		w.ctrl.Toggle()

	case types.NavigateAction:
		w.ctrl.HandleKey(a.Direction)

	case types.SubmitAction:
		w.ctrl.HandleKey("enter")

	case types.CancelAction:
		w.ctrl.HandleKey("esc")

	case types.UpdateTextAction:
		w.ctrl.SetSearch(a.Text)
		w.offset = 0

	case types.FocusAction:
		// leaving a widget closes its panel
		w.ctrl.Close(domain.CloseBlur)
		m.moveFocus(a.Delta)

	case types.SubmitFormAction:
		w.ctrl.Close(domain.CloseSubmit)
		return m.submit()

	case types.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case types.QuitAction:
		log.Printf("Quit requested (force=%v)", a.Force)
		return tea.Quit
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	failing := m.validator.ValidateAll()
	if len(failing) > 0 {
		log.Printf("Submit blocked by %v", failing)
		m.focusWidget(failing[0])
		noun := "field needs"
		if len(failing) > 1 {
			noun = "fields need"
		}
		m.setStatus(fmt.Sprintf("%d %s attention", len(failing), noun), true)
		return nil
	}

	m.result = m.Values()
	m.submitted = true
	log.Printf("Form submitted: %v", m.result)
	return tea.Quit
}

// reload swaps in a new form, carrying over committed values the new
// definition still offers
func (m *Model) reload(cfg *config.Config) tea.Cmd {
	if cfg == nil {
		return nil
	}
	previous := m.Values()
	for i := range cfg.Fields {
		f := &cfg.Fields[i]
		if v := previous[f.Name]; v != "" {
			if _, ok := f.LabelFor(v); ok {
				f.Value = v
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("Reload rejected, keeping previous form: %v", err)
		m.setStatus(fmt.Sprintf("reload failed: %v", err), true)
		return clearStatusAfter(5 * time.Second)
	}

	m.teardown()
	if err := m.build(cfg); err != nil {
		log.Printf("Reload failed: %v", err)
		m.setStatus(fmt.Sprintf("reload failed: %v", err), true)
		return clearStatusAfter(5 * time.Second)
	}

	log.Printf("Form reloaded with %d fields", len(cfg.Fields))
	m.setStatus("Form reloaded", false)
	return clearStatusAfter(3 * time.Second)
}

// View renders the UI
func (m *Model) View() string {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.Title,
		ToggleWidth:   m.config.UISettings.Width,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		HelpModel:     m.help,
		KeyMap:        m.keys,
	}
	for i, w := range m.widgets {
		state.Widgets = append(state.Widgets, m.widgetState(w, i == m.focus))
	}
	return m.renderer.Render(state, m.hits)
}

func (m *Model) widgetState(w *widget, focused bool) views.WidgetState {
	ws := views.WidgetState{
		ID:           w.WidgetID(),
		Label:        w.label(),
		Placeholder:  w.spec.Placeholder,
		Required:     w.spec.Required,
		Focused:      focused,
		Open:         w.ctrl.IsOpen(),
		DisplayLabel: w.ctrl.DisplayLabel(),
		Offset:       w.offset,
		MaxVisible:   w.maxVisible,
		Error:        m.validator.Error(w.WidgetID()),
	}
	if !ws.Open {
		return ws
	}

	if ti := w.input.TextInput(); ti != nil {
		ws.SearchView = ti.View()
	}
	ws.Rows = optionRows(w.ctrl.Presentation(), w.ctrl.Value())
	return ws
}

// optionRows lays out the visible options in visible order
func optionRows(p []combobox.OptionPresentation, value string) []views.OptionRow {
	n := 0
	for _, op := range p {
		if op.Visible {
			n++
		}
	}
	rows := make([]views.OptionRow, n)
	for _, op := range p {
		if !op.Visible {
			continue
		}
		rows[op.VisibleIndex] = views.OptionRow{
			Label:       op.Option.Label,
			Disabled:    op.Option.Disabled,
			Highlighted: op.Highlighted,
			Selected:    value != "" && op.Option.Value == value,
		}
	}
	return rows
}

// Values returns the committed value of every field keyed by name
func (m *Model) Values() map[string]string {
	out := make(map[string]string, len(m.widgets))
	for _, w := range m.widgets {
		out[w.WidgetID()] = w.ctrl.Value()
	}
	return out
}

// Result returns the submitted values, if the form was submitted
func (m *Model) Result() (map[string]string, bool) {
	return m.result, m.submitted
}

// Config returns the form definition currently shown
func (m *Model) Config() *config.Config {
	return m.config
}

// Controller returns the combo box bound to a field
func (m *Model) Controller(id string) (*combobox.Controller, bool) {
	if w := m.widget(id); w != nil {
		return w.ctrl, true
	}
	return nil, false
}

// Focused returns the id of the focused field
func (m *Model) Focused() string {
	if w := m.focused(); w != nil {
		return w.WidgetID()
	}
	return ""
}

// Status returns the status line and whether it reports an error
func (m *Model) Status() (string, bool) {
	return m.statusMessage, m.statusIsError
}

func (m *Model) focused() *widget {
	if m.focus < 0 || m.focus >= len(m.widgets) {
		return nil
	}
	return m.widgets[m.focus]
}

func (m *Model) widget(id string) *widget {
	for _, w := range m.widgets {
		if w.WidgetID() == id {
			return w
		}
	}
	return nil
}

func (m *Model) focusWidget(id string) {
	for i, w := range m.widgets {
		if w.WidgetID() == id {
			m.focus = i
			return
		}
	}
}

func (m *Model) moveFocus(delta int) {
	n := len(m.widgets)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMessage = msg
	m.statusIsError = isError
}

func (m *Model) drainPending() []tea.Cmd {
	var cmds []tea.Cmd
	for _, w := range m.widgets {
		cmds = append(cmds, w.drain()...)
	}
	return cmds
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
