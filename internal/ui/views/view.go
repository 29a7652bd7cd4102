package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"typeahead/internal/domain"
	"typeahead/internal/ui/mouse"
)

// indent is the left margin of every widget, in cells
const indent = 2

// OptionRow is one visible option, in visible order
type OptionRow struct {
	Label       string
	Disabled    bool
	Highlighted bool
	Selected    bool // carries the committed value
}

// WidgetState contains the state needed to draw one combo box
type WidgetState struct {
	ID           string
	Label        string
	Placeholder  string
	Required     bool
	Focused      bool
	Open         bool
	DisplayLabel string
	SearchView   string
	Rows         []OptionRow
	Offset       int // first row of the scroll window
	MaxVisible   int
	Error        string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	ToggleWidth   int
	Widgets       []WidgetState
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view and records where each widget part was
// drawn in hits, so mouse presses can be resolved against the same frame.
func (r *Renderer) Render(state ViewState, hits *mouse.HitMap) string {
	if hits == nil {
		hits = mouse.NewHitMap()
	}
	hits.Clear()

	title := state.Title
	if title == "" {
		title = "typeahead"
	}
	lines := []string{r.styles.Title.Render(title), ""}

	for _, w := range state.Widgets {
		lines = r.renderWidget(lines, w, toggleWidth(state.ToggleWidth), hits)
		lines = append(lines, "")
	}

	if state.StatusMessage != "" {
		style := r.styles.StatusOK
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		lines = append(lines, style.Render(state.StatusMessage))
	}
	if state.KeyMap != nil {
		lines = append(lines, r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return strings.Join(lines, "\n")
}

func toggleWidth(w int) int {
	if w < 8 {
		return 8
	}
	return w
}

func (r *Renderer) renderWidget(lines []string, w WidgetState, width int, hits *mouse.HitMap) []string {
	pad := strings.Repeat(" ", indent)

	label := r.styles.Label.Render(w.Label)
	if w.Required {
		label += r.styles.Required.Render(" *")
	}
	lines = append(lines, label)

	style := r.styles.Toggle
	if w.Focused {
		style = r.styles.ToggleFocus
	}
	text := w.DisplayLabel
	if text == "" {
		text = w.Placeholder
		style = r.styles.Placeholder.Background(style.GetBackground())
	}
	caret := "▾"
	if w.Open {
		caret = "▴"
	}
	button := " " + fit(text, width-4) + " " + caret + " "
	lines = append(lines, pad+style.Render(button))
	hits.Add(mouse.Rect{X: indent, Y: len(lines) - 1, W: width, H: 1},
		domain.Target{WidgetID: w.ID, Part: domain.PartToggle, Index: -1})

	if w.Open {
		content, shown := r.panelContent(w, width)
		top := len(lines)
		boxed := r.styles.Panel.Width(width).Render(strings.Join(content, "\n"))
		for _, l := range strings.Split(boxed, "\n") {
			lines = append(lines, pad+l)
		}

		hits.Add(mouse.Rect{X: indent, Y: top, W: width + 2, H: len(content) + 2},
			domain.Target{WidgetID: w.ID, Part: domain.PartPanel, Index: -1})
		hits.Add(mouse.Rect{X: indent + 1, Y: top + 1, W: width, H: 1},
			domain.Target{WidgetID: w.ID, Part: domain.PartSearch, Index: -1})
		for i, vi := range shown {
			hits.Add(mouse.Rect{X: indent + 1, Y: top + 2 + i, W: width, H: 1},
				domain.Target{WidgetID: w.ID, Part: domain.PartOption, Index: vi})
		}
	}

	if w.Error != "" {
		lines = append(lines, pad+r.styles.FieldError.Render(w.Error))
	}
	return lines
}

// panelContent returns the panel lines and the visible index drawn on each
// option line
func (r *Renderer) panelContent(w WidgetState, width int) ([]string, []int) {
	search := r.styles.Search.Render("› ") + w.SearchView
	content := []string{lipgloss.NewStyle().MaxWidth(width).Render(search)}

	if len(w.Rows) == 0 {
		return append(content, r.styles.Dim.Render(fit("No matches", width))), nil
	}

	start, end := Window(w.Offset, w.MaxVisible, len(w.Rows))
	shown := make([]int, 0, end-start)
	for vi := start; vi < end; vi++ {
		content = append(content, r.renderRow(w.Rows[vi], width))
		shown = append(shown, vi)
	}
	if end-start < len(w.Rows) {
		more := fmt.Sprintf("%d-%d of %d", start+1, end, len(w.Rows))
		content = append(content, r.styles.Scroll.Render(fit(more, width)))
	}
	return content, shown
}

func (r *Renderer) renderRow(row OptionRow, width int) string {
	marker := " "
	if row.Selected {
		marker = "✓"
	}
	text := fit(marker+" "+row.Label, width)

	switch {
	case row.Highlighted:
		return r.styles.HighlightBg.Render(text)
	case row.Disabled:
		return r.styles.Disabled.Render(text)
	case row.Selected:
		return r.styles.Selected.Render(text)
	default:
		return r.styles.Option.Render(text)
	}
}

// Window clamps a scroll offset and returns the half-open row range shown
func Window(offset, size, total int) (int, int) {
	if size <= 0 || size > total {
		size = total
	}
	if offset > total-size {
		offset = total - size
	}
	if offset < 0 {
		offset = 0
	}
	return offset, offset + size
}

// fit truncates s to width cells and pads it to exactly width
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
