package combobox

// NoHighlight is the highlight index meaning "above the first item"
const NoHighlight = -1

// Highlighter tracks the keyboard cursor over the visible set.
// The index is always NoHighlight or a valid visible index.
type Highlighter struct {
	index int
}

// NewHighlighter creates a tracker with no highlight
func NewHighlighter() *Highlighter {
	return &Highlighter{index: NoHighlight}
}

// Index returns the current highlight index
func (h *Highlighter) Index() int {
	return h.index
}

// Reset clears the highlight
func (h *Highlighter) Reset() {
	h.index = NoHighlight
}

// Down moves one row down without wrapping.
// With an empty visible set the result is NoHighlight.
func (h *Highlighter) Down(visibleLen int) int {
	h.index = min(h.index+1, visibleLen-1)
	if h.index < NoHighlight {
		h.index = NoHighlight
	}
	return h.index
}

// Up moves one row up, stopping at NoHighlight
func (h *Highlighter) Up() int {
	h.index = max(h.index-1, NoHighlight)
	return h.index
}
