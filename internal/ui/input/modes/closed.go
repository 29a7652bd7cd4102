package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/ui/input/types"
)

// ClosedMode handles keys while the focused widget shows only its toggle
type ClosedMode struct{}

func NewClosedMode() *ClosedMode {
	return &ClosedMode{}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		// left for the page-level listeners
		return nil, false
	case tea.KeyTab:
		return []types.Action{types.FocusAction{Delta: 1}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.FocusAction{Delta: -1}}, true
	case tea.KeyCtrlS:
		return []types.Action{types.SubmitFormAction{}}, true
	case tea.KeyEnter, tea.KeySpace, tea.KeyDown:
		return []types.Action{types.ToggleAction{}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.FocusAction{Delta: 1}}, true
	case "k":
		return []types.Action{types.FocusAction{Delta: -1}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	return nil, false
}
