package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title              lipgloss.Style
	Subtitle           lipgloss.Style
	Dim                lipgloss.Style
	SearchBox          lipgloss.Style
	SearchBoxFocused   lipgloss.Style
	Button             lipgloss.Style
	ButtonDisabled     lipgloss.Style
	Label              lipgloss.Style
	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style
	SuggestionActive   lipgloss.Style
	Panel              lipgloss.Style
	PanelTitle         lipgloss.Style
	Link               lipgloss.Style
	Key                lipgloss.Style
	Practice           lipgloss.Style
	HelpBox            lipgloss.Style
	Help               lipgloss.Style
	Main               lipgloss.Style
	StatusError        lipgloss.Style
	StatusWarning      lipgloss.Style
	StatusLoading      lipgloss.Style
	StatusSuccess      lipgloss.Style
	StatusInfo         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:      lipgloss.NewStyle().Faint(true),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchBoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("78")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("36")).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("238")).
			Padding(0, 2),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		SuggestionSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			Underline(true).
			Padding(0, 1),
		SuggestionActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("36")).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginTop(1),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Key:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Practice: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("78")).
			Padding(0, 1).
			MarginTop(1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
	}
}
