package state

import (
	"strings"
)

// Focus names the region that receives key presses
type Focus int

const (
	FocusInput Focus = iota
	FocusSuggestions
)

// StatusKind selects how the status line is styled
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// AppState contains the UI state that is not part of the search itself
type AppState struct {
	Focus Focus

	// Suggestions
	Suggestions        []string
	SelectedSuggestion int // index into Suggestions

	// Recent searches, most recent first
	History []string

	// Status line
	StatusMessage string
	StatusKind    StatusKind

	ShowHelp    bool
	ShowHelpBar bool
}

// NewAppState creates a new application state
func NewAppState(suggestions []string) *AppState {
	return &AppState{
		Focus:       FocusInput,
		Suggestions: append([]string(nil), suggestions...),
		ShowHelpBar: true,
	}
}

// ToggleFocus switches focus between the input and the suggestion row
func (s *AppState) ToggleFocus() Focus {
	if s.Focus == FocusInput {
		s.Focus = FocusSuggestions
	} else {
		s.Focus = FocusInput
	}
	return s.Focus
}

// Suggestion operations

// MoveSuggestion moves the selection by delta, wrapping around
func (s *AppState) MoveSuggestion(delta int) {
	n := len(s.Suggestions)
	if n == 0 {
		return
	}
	s.SelectedSuggestion = ((s.SelectedSuggestion+delta)%n + n) % n
}

// CurrentSuggestion returns the selected suggestion word
func (s *AppState) CurrentSuggestion() (string, bool) {
	if s.SelectedSuggestion < 0 || s.SelectedSuggestion >= len(s.Suggestions) {
		return "", false
	}
	return s.Suggestions[s.SelectedSuggestion], true
}

// SuggestionAt returns the suggestion at index
func (s *AppState) SuggestionAt(index int) (string, bool) {
	if index < 0 || index >= len(s.Suggestions) {
		return "", false
	}
	return s.Suggestions[index], true
}

// SelectSuggestion selects the suggestion equal to word, ignoring case
func (s *AppState) SelectSuggestion(word string) bool {
	for i, w := range s.Suggestions {
		if strings.EqualFold(w, word) {
			s.SelectedSuggestion = i
			return true
		}
	}
	return false
}

// History operations

// SetHistory replaces the recent searches
func (s *AppState) SetHistory(terms []string) {
	s.History = append([]string(nil), terms...)
}

// Status operations

// SetStatus sets the status line message
func (s *AppState) SetStatus(kind StatusKind, message string) {
	s.StatusKind = kind
	s.StatusMessage = message
}

// ClearStatus clears the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusKind = StatusInfo
}
