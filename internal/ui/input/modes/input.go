package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"signassist/internal/ui/input/types"
)

// InputMode edits the search field
type InputMode struct {
	textInput *textinput.Model
}

func NewInputMode(ti *textinput.Model) *InputMode {
	return &InputMode{textInput: ti}
}

func (m *InputMode) Name() string {
	return "input"
}

func (m *InputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *InputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *InputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEnter:
		return []types.Action{types.SubmitTextAction{Text: ctx.InputValue()}}, true

	case tea.KeyTab, tea.KeyShiftTab, tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSuggestions}}, true

	case tea.KeyUp:
		return []types.Action{types.RecallHistoryAction{Delta: 1}}, true

	case tea.KeyDown:
		return []types.Action{types.RecallHistoryAction{Delta: -1}}, true
	}

	// Let the handler pass it to the text input
	return nil, false
}
