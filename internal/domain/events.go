package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventComboOpened        EventType = "ComboOpened"
	EventComboClosed        EventType = "ComboClosed"
	EventSearchChanged      EventType = "SearchChanged"
	EventHighlightMoved     EventType = "HighlightMoved"
	EventSelectionCommitted EventType = "SelectionCommitted"
	EventFieldChanged       EventType = "FieldChanged"
	EventPointerDown        EventType = "PointerDown"
	EventGlobalKey          EventType = "GlobalKey"
	EventWidgetMounted      EventType = "WidgetMounted"
	EventWidgetUnmounted    EventType = "WidgetUnmounted"
	EventConfigChanged      EventType = "ConfigChanged"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ComboOpenedEvent is emitted when a combo box panel opens
type ComboOpenedEvent struct {
	WidgetID string
}

func (e ComboOpenedEvent) Type() EventType { return EventComboOpened }

// ComboClosedEvent is emitted when a combo box panel closes
type ComboClosedEvent struct {
	WidgetID string
	Reason   CloseReason
}

func (e ComboClosedEvent) Type() EventType { return EventComboClosed }

// SearchChangedEvent is emitted after the visible set was recomputed
type SearchChangedEvent struct {
	WidgetID     string
	Term         string
	VisibleCount int
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// HighlightMovedEvent is emitted when the keyboard highlight changes
type HighlightMovedEvent struct {
	WidgetID string
	OldIndex int
	NewIndex int
}

func (e HighlightMovedEvent) Type() EventType { return EventHighlightMoved }

// SelectionCommittedEvent is emitted when an option is committed
type SelectionCommittedEvent struct {
	WidgetID string
	Value    string
	Label    string
}

func (e SelectionCommittedEvent) Type() EventType { return EventSelectionCommitted }

// FieldChangedEvent is the change notification of a hidden form field
type FieldChangedEvent struct {
	Field    string
	OldValue string
	Value    string
	Bubbles  bool
}

func (e FieldChangedEvent) Type() EventType { return EventFieldChanged }

// PointerDownEvent is a page-level pointer press. Target is where it landed.
type PointerDownEvent struct {
	Target Target
}

func (e PointerDownEvent) Type() EventType { return EventPointerDown }

// GlobalKeyEvent is a key press delivered to every mounted widget
type GlobalKeyEvent struct {
	Key string
}

func (e GlobalKeyEvent) Type() EventType { return EventGlobalKey }

// WidgetMountedEvent is emitted when a widget joins a page
type WidgetMountedEvent struct {
	WidgetID string
}

func (e WidgetMountedEvent) Type() EventType { return EventWidgetMounted }

// WidgetUnmountedEvent is emitted when a widget leaves a page
type WidgetUnmountedEvent struct {
	WidgetID string
}

func (e WidgetUnmountedEvent) Type() EventType { return EventWidgetUnmounted }

// ConfigChangedEvent is emitted when the form config file changed on disk
type ConfigChangedEvent struct {
	Path string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// Target locates a pointer press: a widget and the part of it that was hit.
// An empty WidgetID means the press landed outside every widget.
type Target struct {
	WidgetID string
	Part     Part
	Index    int // visible index for PartOption
}

// Within reports whether the target lies inside the given widget
func (t Target) Within(widgetID string) bool {
	return t.WidgetID != "" && t.WidgetID == widgetID
}
