package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeInput sends keys to the search field
	ModeInput Mode = iota
	// ModeSuggestions moves over the suggestion row and enables shortcuts
	ModeSuggestions
)

func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeSuggestions:
		return "suggestions"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	InputValue() string
	SuggestionCount() int
	HasVideo() bool
	CanRetry() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
