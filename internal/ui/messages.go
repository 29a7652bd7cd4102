package ui

import (
	"typeahead/internal/config"
)

// ReloadMsg replaces the form with a freshly loaded configuration
type ReloadMsg struct {
	Config *config.Config
}

// ErrorMsg surfaces a background failure in the status line
type ErrorMsg struct {
	Err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
