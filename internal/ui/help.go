package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"signassist/internal/search"
)

// BuildSignSheet renders the current search as plain text for the pager
func BuildSignSheet(s search.State) string {
	var b strings.Builder

	title := fmt.Sprintf("Sign sheet: %s", s.Term)
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(title))))
	b.WriteString("\n\n")

	b.WriteString("Video\n")
	switch {
	case s.VideoURL != "":
		b.WriteString("  " + s.VideoURL + "\n")
	case s.IsLoadingVideo:
		b.WriteString("  (still loading)\n")
	default:
		b.WriteString("  (none)\n")
	}
	b.WriteString("\n")

	switch {
	case s.Description != nil:
		b.WriteString("Hand shape\n")
		b.WriteString("  " + s.Description.HandShape + "\n\n")
		b.WriteString("Movement\n")
		b.WriteString("  " + s.Description.Movement + "\n")
	case s.IsLoadingText:
		b.WriteString("Description\n  (still loading)\n")
	case s.Error != "":
		b.WriteString("Description\n  " + s.Error + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Practice\n")
	b.WriteString(fmt.Sprintf("  1. Watch the video for %q a few times.\n", s.Term))
	b.WriteString("  2. Form the hand shape in front of you, facing a mirror.\n")
	b.WriteString("  3. Repeat the movement slowly, then at normal speed.\n")

	return b.String()
}

// fetchPager returns a command that shows content in the ov pager,
// pausing rendering while it owns the terminal
func (m *Model) fetchPager(title, content string) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}

		err := m.ops.ShowInPager(title, content)

		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}

		return pagerMsg{title: title, err: err}
	}
}

// openVideo returns a command that opens url in the browser
func (m *Model) openVideo(url string) tea.Cmd {
	return func() tea.Msg {
		return browserMsg{url: url, err: m.ops.OpenURL(url)}
	}
}

// copyURL returns a command that copies url to the clipboard
func (m *Model) copyURL(url string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: url, err: m.ops.CopyToClipboard(url)}
	}
}
