package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"signassist/internal/search"
	"signassist/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Focus      state.Focus
	TextInput  string // rendered search field
	InputValue string
	CanSubmit  bool
	Spinner    string

	Suggestions        []string
	SelectedSuggestion int
	History            []string

	Search          search.State
	PracticeVisible bool

	StatusMessage string
	StatusKind    state.StatusKind

	ShowHelp    bool
	ShowHelpBar bool
	HelpModel   help.Model
	KeyBindings []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cards       *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cards:       NewCardRenderer(),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	if vs.ShowHelp {
		return r.popupRender.RenderPopup(r.RenderHelpContent(), vs.Height, vs.Width, r.styles.HelpBox)
	}

	width := vs.Width
	if width <= 0 {
		width = 80
	}
	inner := width - 4 // main padding
	if inner > 100 {
		inner = 100
	}

	content := &strings.Builder{}

	content.WriteString(r.renderHeader())
	content.WriteString("\n\n")
	content.WriteString(r.renderSearchBar(vs, inner))
	content.WriteString("\n")
	content.WriteString(r.renderSuggestions(vs))
	if len(vs.History) > 0 {
		content.WriteString("\n")
		content.WriteString(r.renderHistory(vs))
	}
	content.WriteString("\n")

	if vs.Search.Term == "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render("Search for a word or pick a suggestion to get started."))
	} else {
		content.WriteString(r.renderVideoPanel(vs, inner))
		content.WriteString("\n")
		content.WriteString(r.renderCardsPanel(vs, inner))
		if vs.PracticeVisible {
			content.WriteString("\n")
			content.WriteString(r.renderPracticePanel(vs, inner))
		}
	}

	if vs.StatusMessage != "" {
		content.WriteString("\n\n")
		content.WriteString(r.renderStatus(vs))
	}

	footer := r.renderFooter(vs)

	// Push the footer to the bottom when there is room
	body := content.String()
	if vs.Height > 0 {
		used := lipgloss.Height(body) + lipgloss.Height(footer) + 2 // main padding
		if pad := vs.Height - used; pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	}
	body += "\n" + footer

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(body)
}

func (r *Renderer) renderHeader() string {
	title := r.styles.Title.Render("🤟 SignAssist")
	subtitle := r.styles.Subtitle.Render("Learn American Sign Language with AI")
	tagline := r.styles.Dim.Render("Type a word → Watch → Practice")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, tagline)
}

func (r *Renderer) renderSearchBar(vs ViewState, width int) string {
	var button string
	switch {
	case vs.Search.IsLoadingVideo:
		button = r.styles.ButtonDisabled.Render(strings.TrimSpace(vs.Spinner + " Searching"))
	case vs.CanSubmit:
		button = r.styles.Button.Render("Sign")
	default:
		button = r.styles.ButtonDisabled.Render("Sign")
	}

	box := r.styles.SearchBox
	if vs.Focus == state.FocusInput {
		box = r.styles.SearchBoxFocused
	}
	fieldWidth := width - lipgloss.Width(button) - 5
	if fieldWidth < 10 {
		fieldWidth = 10
	}
	field := box.Width(fieldWidth).Render(vs.TextInput)
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button)
}

func (r *Renderer) renderSuggestions(vs ViewState) string {
	parts := []string{r.styles.Label.Render("Suggestions:")}
	for i, word := range vs.Suggestions {
		style := r.styles.Suggestion
		if i == vs.SelectedSuggestion {
			if vs.Focus == state.FocusSuggestions {
				style = r.styles.SuggestionActive
			} else {
				style = r.styles.SuggestionSelected
			}
		}
		parts = append(parts, style.Render(word))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) renderHistory(vs ViewState) string {
	return r.styles.Label.Render("Recent:") + " " + r.styles.Dim.Render(strings.Join(vs.History, " · "))
}

func (r *Renderer) renderVideoPanel(vs ViewState, width int) string {
	var body string
	if vs.Search.IsLoadingVideo {
		body = r.styles.StatusLoading.Render(fmt.Sprintf("%s Finding a video for %q...", vs.Spinner, vs.Search.Term))
	} else if vs.Search.VideoURL != "" {
		body = r.styles.Link.Render(vs.Search.VideoURL) + "\n" +
			r.styles.Dim.Render(fmt.Sprintf("%s open in browser  %s copy link",
				r.styles.Key.Render("o"), r.styles.Key.Render("y")))
	} else {
		body = r.styles.StatusError.Render("No video available")
	}
	return r.panel("Video", body, width, r.styles.Panel)
}

func (r *Renderer) renderCardsPanel(vs ViewState, width int) string {
	var body string
	switch {
	case vs.Search.IsLoadingText:
		body = r.styles.StatusLoading.Render(fmt.Sprintf("%s Asking the AI how to sign %q...", vs.Spinner, vs.Search.Term))
	case vs.Search.Description != nil:
		body = r.cards.Render(*vs.Search.Description, width-4)
	case vs.Search.Error != "":
		body = r.styles.StatusError.Render(vs.Search.Error) + "\n" +
			r.styles.Dim.Render(fmt.Sprintf("press %s to try again", r.styles.Key.Render("r")))
	default:
		body = r.styles.Dim.Render("No description available")
	}
	return r.panel("How to sign it", body, width, r.styles.Panel)
}

func (r *Renderer) renderPracticePanel(vs ViewState, width int) string {
	steps := []string{
		fmt.Sprintf("1. Watch the video for %q a few times.", vs.Search.Term),
		"2. Form the hand shape in front of you, facing a mirror.",
		"3. Repeat the movement slowly, then at normal speed.",
	}
	body := strings.Join(steps, "\n") + "\n" +
		r.styles.Dim.Render(fmt.Sprintf("%s opens a printable sign sheet", r.styles.Key.Render("p")))
	return r.panel("Practice", body, width, r.styles.Practice)
}

func (r *Renderer) panel(title, body string, width int, style lipgloss.Style) string {
	w := width - 2 // border
	if w < 10 {
		w = 10
	}
	return style.Width(w).Render(r.styles.PanelTitle.Render(title) + "\n" + body)
}

func (r *Renderer) renderStatus(vs ViewState) string {
	style := r.styles.StatusInfo
	switch vs.StatusKind {
	case state.StatusError:
		style = r.styles.StatusError
	case state.StatusWarning:
		style = r.styles.StatusWarning
	case state.StatusSuccess:
		style = r.styles.StatusSuccess
	}
	return style.Render(vs.StatusMessage)
}

func (r *Renderer) renderFooter(vs ViewState) string {
	if vs.ShowHelpBar && len(vs.KeyBindings) > 0 {
		return vs.HelpModel.ShortHelpView(vs.KeyBindings)
	}
	return r.styles.Help.Render("Press tab then ? for help")
}
