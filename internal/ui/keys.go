package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "signassist/internal/ui/input/types"
)

// keyMap lists the bindings shown in the help bar
type keyMap struct {
	Search    key.Binding
	Focus     key.Binding
	Recall    key.Binding
	Select    key.Binding
	Click     key.Binding
	OpenVideo key.Binding
	CopyURL   key.Binding
	Retry     key.Binding
	SignSheet key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "suggestions")),
		Recall:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "recent")),
		Select:    key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "select")),
		Click:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "search")),
		OpenVideo: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open video")),
		CopyURL:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		SignSheet: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "sign sheet")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns the bindings for the current mode
func (k keyMap) ShortHelp(mode inputtypes.Mode, canRetry bool) []key.Binding {
	if mode == inputtypes.ModeInput {
		return []key.Binding{k.Search, k.Focus, k.Recall, k.ForceQuit}
	}
	bindings := []key.Binding{k.Select, k.Click, k.OpenVideo, k.CopyURL}
	if canRetry {
		bindings = append(bindings, k.Retry)
	}
	return append(bindings, k.SignSheet, k.Help, k.Quit)
}
