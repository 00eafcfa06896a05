package views

import (
	"fmt"
	"strings"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Search", []helpEntry{
		{"enter", "Search for the typed word"},
		{"↑/↓", "Recall recent searches"},
		{"tab, esc", "Move focus to the suggestions"},
	}},
	{"Suggestions", []helpEntry{
		{"←/→, h/l", "Select a suggestion"},
		{"enter, space", "Search the selected suggestion"},
		{"1-9", "Search the n-th suggestion"},
		{"tab, /, i", "Back to the search field"},
	}},
	{"Results", []helpEntry{
		{"o", "Open the sign video in the browser"},
		{"y", "Copy the video link"},
		{"r", "Ask the AI again after a failed description"},
		{"p", "Open the sign sheet in a pager"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"H", "Open this help in a pager"},
		{"q, esc", "Quit (from the suggestions)"},
		{"ctrl+c", "Quit"},
	}},
}

// RenderHelpContent renders the key reference with colors
func (r *Renderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.styles.Title.Render("SignAssist Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		help.WriteString("\n")
		help.WriteString(r.styles.PanelTitle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s  %s\n",
				r.styles.Key.Render(fmt.Sprintf("%-12s", e.keys)),
				e.desc))
		}
		if i == len(helpSections)-1 {
			help.WriteString("\n")
			help.WriteString(r.styles.Dim.Render("Press ? or esc to close"))
		}
	}

	return help.String()
}

// RenderHelpContentPlain renders the key reference without styling, for the pager
func RenderHelpContentPlain() string {
	var help strings.Builder
	help.WriteString("SignAssist Help\n")
	for _, section := range helpSections {
		help.WriteString("\n")
		help.WriteString(section.title)
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %-12s  %s\n", e.keys, e.desc))
		}
	}
	return help.String()
}
