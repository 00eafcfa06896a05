package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"signassist/internal/eventbus"
	"signassist/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.HistoryUpdatedEvent:
		h.state.SetHistory(e.Terms)

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.state.SetStatus(state.StatusError, msg)

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(state.StatusSuccess, fmt.Sprintf("Saved settings to %s", e.Path))
	}
	return nil
}
