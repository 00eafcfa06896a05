package input

import (
	"signassist/internal/search"
	"signassist/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Search search.State
	Input  string
}

// InputValue returns the search field contents
func (c *ModelContext) InputValue() string {
	return c.Input
}

// SuggestionCount returns the number of suggestion words
func (c *ModelContext) SuggestionCount() int {
	return len(c.State.Suggestions)
}

// HasVideo reports whether the current search has a video URL
func (c *ModelContext) HasVideo() bool {
	return c.Search.VideoURL != ""
}

// CanRetry reports whether the description lookup can be retried
func (c *ModelContext) CanRetry() bool {
	return c.Search.TextFailed()
}
