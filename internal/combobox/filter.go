package combobox

import (
	"strings"

	"typeahead/internal/domain"
)

// Visible returns the ids of every option whose label contains term,
// compared case-insensitively after trimming both sides. Registry order is kept.
func Visible(term string, r *Registry) []domain.OptionID {
	visible := make([]domain.OptionID, 0, r.Len())
	for _, opt := range r.options {
		if Matches(term, opt.Label) {
			visible = append(visible, opt.ID)
		}
	}
	return visible
}

// Matches reports whether a single label passes the filter for term
func Matches(term, label string) bool {
	return strings.Contains(normalize(label), normalize(term))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
