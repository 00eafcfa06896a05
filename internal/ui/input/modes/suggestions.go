package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"signassist/internal/ui/input/types"
)

// SuggestionsMode moves over the suggestion row. Single-letter shortcuts
// only work here since the input field would swallow them.
type SuggestionsMode struct{}

func NewSuggestionsMode() *SuggestionsMode {
	return &SuggestionsMode{}
}

func (m *SuggestionsMode) Name() string {
	return "suggestions"
}

func (m *SuggestionsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SuggestionsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SuggestionsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyTab, tea.KeyShiftTab:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "first"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "last"}}, true

	case tea.KeyEnter, tea.KeySpace:
		if ctx.SuggestionCount() == 0 {
			return nil, false
		}
		return []types.Action{types.ClickSuggestionAction{Index: -1}}, true
	}

	switch msg.String() {
	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(msg.String()[0] - '1')
		if index >= ctx.SuggestionCount() {
			return nil, false
		}
		return []types.Action{types.ClickSuggestionAction{Index: index}}, true

	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput}}, true

	case "o":
		if !ctx.HasVideo() {
			return []types.Action{types.StatusAction{Message: "No video yet"}}, true
		}
		return []types.Action{types.OpenVideoAction{}}, true

	case "y":
		if !ctx.HasVideo() {
			return []types.Action{types.StatusAction{Message: "No video yet"}}, true
		}
		return []types.Action{types.CopyURLAction{}}, true

	case "r":
		if !ctx.CanRetry() {
			return []types.Action{types.StatusAction{Message: "Nothing to retry"}}, true
		}
		return []types.Action{types.RetryDescriptionAction{}}, true

	case "p":
		return []types.Action{types.OpenSignSheetAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
