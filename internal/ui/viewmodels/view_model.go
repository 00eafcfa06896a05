package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"signassist/internal/search"
	"signassist/internal/ui/state"
	"signassist/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state       *state.AppState
	search      *search.Orchestrator
	width       int
	height      int
	help        help.Model
	textInput   textinput.Model
	spinner     spinner.Model
	keyBindings []key.Binding
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, orchestrator *search.Orchestrator) *ViewModel {
	return &ViewModel{
		state:  appState,
		search: orchestrator,
		help:   help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetKeyBindings sets the bindings shown in the help bar
func (vm *ViewModel) SetKeyBindings(bindings []key.Binding) {
	vm.keyBindings = bindings
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// UpdateSpinner updates the spinner model
func (vm *ViewModel) UpdateSpinner(s spinner.Model) {
	vm.spinner = s
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.search.State()
	input := vm.textInput.Value()
	return views.ViewState{
		Width:              vm.width,
		Height:             vm.height,
		Focus:              vm.state.Focus,
		TextInput:          vm.textInput.View(),
		InputValue:         input,
		CanSubmit:          s.CanSubmit(input),
		Spinner:            vm.spinner.View(),
		Suggestions:        vm.state.Suggestions,
		SelectedSuggestion: vm.state.SelectedSuggestion,
		History:            vm.state.History,
		Search:             s,
		PracticeVisible:    s.PracticeVisible(),
		StatusMessage:      vm.state.StatusMessage,
		StatusKind:         vm.state.StatusKind,
		ShowHelp:           vm.state.ShowHelp,
		ShowHelpBar:        vm.state.ShowHelpBar,
		HelpModel:          vm.help,
		KeyBindings:        vm.keyBindings,
	}
}
