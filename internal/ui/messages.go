package ui

import (
	"signassist/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// clearStatusMsg clears the status line if no newer message replaced it
type clearStatusMsg struct {
	seq int
}

// pagerMsg contains the result of showing content in the pager
type pagerMsg struct {
	title string
	err   error
}

// browserMsg contains the result of opening a URL in the browser
type browserMsg struct {
	url string
	err error
}

// clipboardMsg contains the result of copying to the clipboard
type clipboardMsg struct {
	text string
	err  error
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager has exited
type resumeRenderingMsg struct{}
