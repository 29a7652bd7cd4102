package domain

// OptionID is the position of an option in its widget's registry
type OptionID int

// NoOption marks the absence of an option
const NoOption OptionID = -1

// Option represents a selectable entry of a combo box
type Option struct {
	ID       OptionID
	Value    string
	Label    string
	Disabled bool // visible and traversable, but never committed
}

// ComboState is the open/closed state of a combo box
type ComboState int

const (
	StateClosed ComboState = iota
	StateOpen
)

func (s ComboState) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// CloseReason records which transition closed a combo box
type CloseReason string

const (
	CloseToggle  CloseReason = "toggle"
	CloseEscape  CloseReason = "escape"
	CloseOutside CloseReason = "outside"
	CloseCommit  CloseReason = "commit"
	CloseBlur    CloseReason = "blur"
	CloseSubmit  CloseReason = "submit"
)

// Part identifies a region inside a mounted widget
type Part int

const (
	PartNone Part = iota
	PartToggle
	PartSearch
	PartPanel
	PartOption
)

func (p Part) String() string {
	switch p {
	case PartToggle:
		return "toggle"
	case PartSearch:
		return "search"
	case PartPanel:
		return "panel"
	case PartOption:
		return "option"
	default:
		return "none"
	}
}
