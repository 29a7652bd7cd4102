package mouse

import (
	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/domain"
)

// Rect represents a rectangular screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the point (x, y) is within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region maps a rectangle to the widget part drawn there
type Region struct {
	Rect   Rect
	Target domain.Target
}

// HitMap is rebuilt on every render and answers which part sits under a cell
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{regions: make([]Region, 0, 32)}
}

func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

func (h *HitMap) Add(rect Rect, target domain.Target) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	h.regions = append(h.regions, Region{Rect: rect, Target: target})
}

// Test returns the topmost target under (x, y). A point outside every
// region yields the zero Target, which lies outside every widget.
func (h *HitMap) Test(x, y int) domain.Target {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return h.regions[i].Target
		}
	}
	return domain.Target{}
}

// Regions returns a copy of all registered regions
func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// IsPrimaryPress reports whether msg is a left button press, the only mouse
// event that acts as a pointer-down
func IsPrimaryPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
