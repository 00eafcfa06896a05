// Package search coordinates the two lookups behind one sign search: the
// AI text description and the video URL. Both run as tea.Cmds and settle back
// into the program's Update loop as messages.
package search

import (
	"signassist/internal/domain"
)

// Request identifies one launched lookup. IDs come from a single counter so
// a completion can be matched against the lookup the state still expects.
type Request struct {
	ID   uint64
	Term string
}

// State is what the UI renders for the current search.
type State struct {
	Term           string
	VideoURL       string
	Description    *domain.SignDescription
	IsLoadingVideo bool
	IsLoadingText  bool
	Error          string
}

// PracticeVisible reports whether the practice panel should be shown.
func (s State) PracticeVisible() bool {
	return s.Term != "" && !s.IsLoadingVideo && !s.IsLoadingText
}

// CanSubmit reports whether input may start a new search.
func (s State) CanSubmit(input string) bool {
	return !s.IsLoadingVideo && input != ""
}

// Settled reports whether a search has been made and both lookups finished.
func (s State) Settled() bool {
	return s.PracticeVisible()
}

// TextFailed reports whether the text lookup finished without a description.
func (s State) TextFailed() bool {
	return s.Term != "" && !s.IsLoadingText && s.Description == nil && s.Error != ""
}

// DescriptionSettledMsg carries the outcome of a text lookup.
type DescriptionSettledMsg struct {
	Request     Request
	Description domain.SignDescription
	Err         error
}

// VideoSettledMsg carries the resolved video URL after the display delay.
type VideoSettledMsg struct {
	Request Request
	URL     string
	Err     error
}
