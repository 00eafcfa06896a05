package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"signassist/internal/ui/input/modes"
	"signassist/internal/ui/input/types"
)

// Placeholder is shown in the empty search field
const Placeholder = "Type a word (e.g., 'Family', 'Love')..."

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search field
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeInput,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeInput] = modes.NewInputMode(h.textInput)
	h.modes[types.ModeSuggestions] = modes.NewSuggestionsMode()

	return h
}

// HandleKey routes a key to the current mode. Keys the input mode does not
// consume are fed to the text field.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && h.currentMode != types.ModeInput {
		return nil, nil
	}

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			allActions = append(allActions, action)
			if h.currentMode == types.ModeInput {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	if h.currentMode == types.ModeInput && !consumed {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches mode outside of key handling
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	h.switchMode(mode, ctx)
	if mode == types.ModeInput {
		return textinput.Blink
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the search field
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Value returns the search field contents
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// SetValue replaces the search field contents and moves the cursor to the end
func (h *Handler) SetValue(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

// SetWidth sets the visible width of the search field
func (h *Handler) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	h.textInput.Width = width
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
