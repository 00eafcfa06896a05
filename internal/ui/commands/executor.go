package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"signassist/internal/eventbus"
	"signassist/internal/search"
	"signassist/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, orchestrator *search.Orchestrator, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Search: orchestrator,
			Bus:    bus,
		},
	}
}

// ExecuteSubmit creates and executes a submit command
func (e *Executor) ExecuteSubmit(term string) tea.Cmd {
	cmd := NewSubmitCommand(e.ctx, term)
	return cmd.Execute()
}

// ExecuteSuggestion creates and executes a suggestion command
func (e *Executor) ExecuteSuggestion(word string) tea.Cmd {
	cmd := NewSuggestionCommand(e.ctx, word)
	return cmd.Execute()
}

// ExecuteRetry creates and executes a retry command
func (e *Executor) ExecuteRetry() tea.Cmd {
	cmd := NewRetryCommand(e.ctx)
	return cmd.Execute()
}
