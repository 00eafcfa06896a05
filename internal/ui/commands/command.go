package commands

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"signassist/internal/eventbus"
	"signassist/internal/search"
	"signassist/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Search *search.Orchestrator
	Bus    eventbus.EventBus
}

// SubmitCommand starts a search for the text in the search field
type SubmitCommand struct {
	ctx  *CommandContext
	term string
}

// NewSubmitCommand creates a new submit command
func NewSubmitCommand(ctx *CommandContext, term string) *SubmitCommand {
	return &SubmitCommand{
		ctx:  ctx,
		term: term,
	}
}

// Execute starts the search unless submitting is currently disabled
func (c *SubmitCommand) Execute() tea.Cmd {
	if !c.ctx.Search.CanSubmit(c.term) {
		if c.ctx.Search.State().IsLoadingVideo {
			c.ctx.State.SetStatus(state.StatusWarning, "Still loading the video, hold on")
		}
		return nil
	}
	return startSearch(c.ctx, c.term)
}

// SuggestionCommand searches for a suggestion word. Unlike submit it is
// allowed while a search is in flight.
type SuggestionCommand struct {
	ctx  *CommandContext
	word string
}

// NewSuggestionCommand creates a new suggestion command
func NewSuggestionCommand(ctx *CommandContext, word string) *SuggestionCommand {
	return &SuggestionCommand{
		ctx:  ctx,
		word: word,
	}
}

// Execute starts the search
func (c *SuggestionCommand) Execute() tea.Cmd {
	c.ctx.State.SelectSuggestion(c.word)
	return startSearch(c.ctx, c.word)
}

// RetryCommand re-runs a failed description lookup
type RetryCommand struct {
	ctx *CommandContext
}

// NewRetryCommand creates a new retry command
func NewRetryCommand(ctx *CommandContext) *RetryCommand {
	return &RetryCommand{ctx: ctx}
}

// Execute performs the retry
func (c *RetryCommand) Execute() tea.Cmd {
	cmd, err := c.ctx.Search.RetryDescription()
	if err != nil {
		c.ctx.State.SetStatus(state.StatusInfo, "Nothing to retry")
		return nil
	}
	c.ctx.State.SetStatus(state.StatusInfo, fmt.Sprintf("Asking again about %q", c.ctx.Search.State().Term))
	return cmd
}

func startSearch(ctx *CommandContext, term string) tea.Cmd {
	cmd, err := ctx.Search.TriggerSearch(term)
	if err != nil {
		if errors.Is(err, search.ErrEmptyTerm) {
			ctx.State.SetStatus(state.StatusWarning, "Type a word to search")
		} else {
			ctx.State.SetStatus(state.StatusError, err.Error())
			if ctx.Bus != nil {
				ctx.Bus.Publish(eventbus.ErrorEvent{Message: "search failed to start", Err: err})
			}
		}
		return nil
	}
	ctx.State.ClearStatus()
	return cmd
}
