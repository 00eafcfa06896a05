package types

// Navigation actions
type NavigateAction struct {
	Direction string // "left", "right", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// RecallHistoryAction steps through recent searches from the input field
type RecallHistoryAction struct {
	Delta int // +1 older, -1 newer
}

func (a RecallHistoryAction) Type() string { return "recall_history" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Suggestion actions
type ClickSuggestionAction struct {
	Index int // -1 for current
}

func (a ClickSuggestionAction) Type() string { return "click_suggestion" }

// Result actions
type OpenVideoAction struct{}

func (a OpenVideoAction) Type() string { return "open_video" }

type CopyURLAction struct{}

func (a CopyURLAction) Type() string { return "copy_url" }

type RetryDescriptionAction struct{}

func (a RetryDescriptionAction) Type() string { return "retry_description" }

type OpenSignSheetAction struct{}

func (a OpenSignSheetAction) Type() string { return "open_sign_sheet" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
