package input

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/ui/input/modes"
	"typeahead/internal/ui/input/types"
)

// Handler turns key messages into actions for one widget. It owns the
// widget's search box, which is only focused while the panel is open.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
}

func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeClosed,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeClosed] = modes.NewClosedMode()
	h.modes[types.ModeOpen] = modes.NewOpenMode(h.textInput)

	return h
}

// HandleKey routes msg to the current mode. Keys the open mode does not
// consume edit the search box; a changed value yields an UpdateTextAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || h.currentMode != types.ModeOpen {
		return actions, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.UpdateTextAction{Text: after})
	}
	return actions, cmd
}

// ChangeMode runs the exit hook of the current mode and the enter hook of
// the new one. Changing to the current mode is a no-op.
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	from := h.modes[h.currentMode]
	if from != nil {
		actions = append(actions, from.Exit(ctx)...)
	}
	h.currentMode = mode
	if to := h.modes[h.currentMode]; to != nil {
		if from != nil {
			log.Printf("input %s: %s -> %s", ctx.WidgetID(), from.Name(), to.Name())
		}
		actions = append(actions, to.Enter(ctx)...)
	}

	if mode == types.ModeOpen {
		return actions, textinput.Blink
	}
	return actions, nil
}

// Update forwards non-key messages, such as cursor blinks, to the search box
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeOpen {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the search box while the panel is open
func (h *Handler) TextInput() *textinput.Model {
	if h.currentMode == types.ModeOpen {
		return h.textInput
	}
	return nil
}

// SetWidth limits the visible width of the search box
func (h *Handler) SetWidth(width int) {
	if width > 0 {
		h.textInput.Width = width
	}
}
