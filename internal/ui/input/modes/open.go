package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/ui/input/types"
)

// OpenMode handles keys while the panel is shown. Anything it does not
// consume is typed into the search box.
type OpenMode struct {
	textInput *textinput.Model
}

func NewOpenMode(ti *textinput.Model) *OpenMode {
	return &OpenMode{textInput: ti}
}

func (m *OpenMode) Name() string {
	return "open"
}

func (m *OpenMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
	}
	return nil
}

func (m *OpenMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *OpenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.CancelAction{}}, true
	case "enter":
		return []types.Action{types.SubmitAction{}}, true
	case "up":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "tab":
		return []types.Action{types.FocusAction{Delta: 1}}, true
	case "shift+tab":
		return []types.Action{types.FocusAction{Delta: -1}}, true
	case "ctrl+s":
		return []types.Action{types.SubmitFormAction{}}, true
	default:
		return nil, false
	}
}
