package domain

import "strings"

// SignDescription is how a sign is formed: the hand shape and how it moves
type SignDescription struct {
	HandShape string `json:"handShape"`
	Movement  string `json:"movement"`
}

// IsZero reports whether neither field has content
func (d SignDescription) IsZero() bool {
	return strings.TrimSpace(d.HandShape) == "" && strings.TrimSpace(d.Movement) == ""
}

// DefaultSuggestions are the words offered under the search bar
var DefaultSuggestions = []string{"Hello", "Thank you", "Yes", "No", "Help", "Family", "Love"}
