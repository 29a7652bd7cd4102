package types

// ToggleAction opens a closed combo box or closes an open one
type ToggleAction struct{}

func (a ToggleAction) Type() string { return "toggle" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

// SubmitAction commits the highlighted option
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// CancelAction closes the panel without committing
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// FocusAction moves focus between widgets of the form
type FocusAction struct {
	Delta int // +1 next, -1 previous
}

func (a FocusAction) Type() string { return "focus" }

// SubmitFormAction validates and submits the whole form
type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
