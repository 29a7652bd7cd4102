package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Required    lipgloss.Style
	Toggle      lipgloss.Style
	ToggleFocus lipgloss.Style
	Placeholder lipgloss.Style
	Panel       lipgloss.Style
	Search      lipgloss.Style
	Option      lipgloss.Style
	HighlightBg lipgloss.Style
	Selected    lipgloss.Style
	Disabled    lipgloss.Style
	Dim         lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
	StatusError lipgloss.Style
	StatusOK    lipgloss.Style
	FieldError  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Required:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toggle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		ToggleFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Search:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Option:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Disabled:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		FieldError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
