package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"signassist/internal/config"
	"signassist/internal/eventbus"
	"signassist/internal/search"
	"signassist/internal/ui/commands"
	"signassist/internal/ui/handlers"
	"signassist/internal/ui/input"
	inputtypes "signassist/internal/ui/input/types"
	"signassist/internal/ui/state"
	"signassist/internal/ui/viewmodels"
	"signassist/internal/ui/views"
)

// statusTimeout is how long a status message stays visible
const statusTimeout = 3 * time.Second

// Options configures a Model
type Options struct {
	Config      *config.Config
	Bus         eventbus.EventBus
	Search      *search.Orchestrator
	InitialTerm string
	Logger      zerolog.Logger
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	search *search.Orchestrator

	width   int
	height  int
	help    help.Model
	spinner spinner.Model
	keys    keyMap

	inPagerMode   bool
	initialTerm   string
	historyCursor int // -1 when not recalling
	statusSeq     int

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	ops          *ExternalOps

	logger zerolog.Logger

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState(cfg.UISettings.Suggestions)
	appState.ShowHelpBar = cfg.UISettings.ShowHelpBar

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		bus:           opts.Bus,
		config:        cfg,
		state:         appState,
		search:        opts.Search,
		help:          help.New(),
		spinner:       s,
		keys:          newKeyMap(),
		initialTerm:   opts.InitialTerm,
		historyCursor: -1,
		renderer:      views.NewRenderer(),
		inputHandler:  input.New(),
		ops:           NewExternalOps(),
		logger:        opts.Logger.With().Str("component", "ui").Logger(),
	}

	m.eventHandler = handlers.NewEventHandler(appState)
	m.cmdExecutor = commands.NewExecutor(appState, opts.Search, opts.Bus)
	m.viewModel = viewmodels.NewViewModel(appState, opts.Search)
	m.viewModel.SetHelp(m.help)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.ops.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.inputHandler.Init(), m.spinner.Tick}
	if m.initialTerm != "" {
		m.inputHandler.SetValue(m.initialTerm)
		cmds = append(cmds, m.cmdExecutor.ExecuteSubmit(m.initialTerm))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	prevStatus := m.state.StatusMessage

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.inputHandler.SetWidth(msg.Width - 24)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case search.DescriptionSettledMsg, search.VideoSettledMsg:
		m.search.Apply(msg)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	default:
		cmd = m.handleNonKeyboardMsg(msg)
	}

	return m, m.scheduleStatusClear(prevStatus, cmd)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The help popup takes all keys until closed
	if m.state.ShowHelp {
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit
		case "esc", "?", "q":
			m.state.ShowHelp = false
		}
		return nil
	}

	ctx := &input.ModelContext{
		State:  m.state,
		Search: m.search.State(),
		Input:  m.inputHandler.Value(),
	}

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}
	return tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.viewModel.UpdateSpinner(m.spinner)
	m.viewModel.SetKeyBindings(m.keys.ShortHelp(m.inputHandler.CurrentMode(), m.search.State().TextFailed()))

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug().Str("action", action.Type()).Msg("processAction")

	switch a := action.(type) {
	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeInput {
			m.state.Focus = state.FocusInput
		} else {
			m.state.Focus = state.FocusSuggestions
		}

	case inputtypes.UpdateTextAction:
		m.historyCursor = -1

	case inputtypes.SubmitTextAction:
		m.historyCursor = -1
		return m.cmdExecutor.ExecuteSubmit(a.Text)

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "left":
			m.state.MoveSuggestion(-1)
		case "right":
			m.state.MoveSuggestion(1)
		case "first":
			m.state.SelectedSuggestion = 0
		case "last":
			if n := len(m.state.Suggestions); n > 0 {
				m.state.SelectedSuggestion = n - 1
			}
		}

	case inputtypes.ClickSuggestionAction:
		word, ok := m.state.CurrentSuggestion()
		if a.Index >= 0 {
			word, ok = m.state.SuggestionAt(a.Index)
		}
		if !ok {
			return nil
		}
		m.inputHandler.SetValue(word)
		return m.cmdExecutor.ExecuteSuggestion(word)

	case inputtypes.RecallHistoryAction:
		m.recallHistory(a.Delta)

	case inputtypes.OpenVideoAction:
		if url := m.search.State().VideoURL; url != "" {
			return m.openVideo(url)
		}

	case inputtypes.CopyURLAction:
		if url := m.search.State().VideoURL; url != "" {
			return m.copyURL(url)
		}

	case inputtypes.RetryDescriptionAction:
		return m.cmdExecutor.ExecuteRetry()

	case inputtypes.OpenSignSheetAction:
		s := m.search.State()
		if s.Term == "" {
			m.state.SetStatus(state.StatusInfo, "Search for a word first")
			return nil
		}
		return m.fetchPager("sign sheet", BuildSignSheet(s))

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.OpenHelpPagerAction:
		return m.fetchPager("help", views.RenderHelpContentPlain())

	case inputtypes.StatusAction:
		m.state.SetStatus(state.StatusInfo, a.Message)

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// recallHistory fills the search field with an older (+1) or newer (-1) recent term
func (m *Model) recallHistory(delta int) {
	if len(m.state.History) == 0 {
		return
	}
	next := m.historyCursor + delta
	if next < -1 {
		next = -1
	}
	if next >= len(m.state.History) {
		next = len(m.state.History) - 1
	}
	m.historyCursor = next
	if next == -1 {
		m.inputHandler.SetValue("")
		return
	}
	m.inputHandler.SetValue(m.state.History[next])
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case browserMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("url", msg.url).Msg("failed to open browser")
			m.state.SetStatus(state.StatusError, fmt.Sprintf("Couldn't open the browser: %v", msg.err))
		} else {
			m.state.SetStatus(state.StatusSuccess, "Opened the video in your browser")
		}

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("failed to copy to clipboard")
			m.state.SetStatus(state.StatusError, fmt.Sprintf("Couldn't copy the link: %v", msg.err))
		} else {
			m.state.SetStatus(state.StatusSuccess, "Copied the video link")
		}

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("pager", msg.title).Msg("pager failed")
			if msg.title == "help" {
				// Fall back to the popup
				m.state.ShowHelp = true
			} else {
				m.state.SetStatus(state.StatusError, fmt.Sprintf("Couldn't open the %s: %v", msg.title, msg.err))
			}
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}

	default:
		// Cursor blink and other text input messages
		return m.inputHandler.Update(msg)
	}
	return nil
}

// scheduleStatusClear adds a timer that clears a newly set status message
func (m *Model) scheduleStatusClear(prevStatus string, cmd tea.Cmd) tea.Cmd {
	if m.state.StatusMessage == "" || m.state.StatusMessage == prevStatus {
		return cmd
	}
	m.statusSeq++
	seq := m.statusSeq
	clearCmd := tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
	return tea.Batch(cmd, clearCmd)
}
