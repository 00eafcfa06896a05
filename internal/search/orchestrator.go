package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"signassist/internal/describe"
	"signassist/internal/eventbus"
)

var (
	// ErrEmptyTerm is returned when a search is triggered with a blank term.
	ErrEmptyTerm = errors.New("search term is empty")
	// ErrNothingToRetry is returned when there is no failed description to retry.
	ErrNothingToRetry = errors.New("no failed description to retry")
)

// URLBuilder turns a term into the address of its sign video.
type URLBuilder interface {
	Build(term string) (string, error)
}

// Options configures an Orchestrator.
type Options struct {
	Fetcher describe.Fetcher
	URLs    URLBuilder
	// VideoDelay is how long the video region stays in its loading state
	// before the URL is shown.
	VideoDelay time.Duration
	// Timeout bounds each text lookup. Zero means no timeout.
	Timeout time.Duration
	Bus     eventbus.EventBus
	Logger  zerolog.Logger
}

// Orchestrator owns the search state. All methods must be called from the
// bubbletea Update loop.
type Orchestrator struct {
	fetcher    describe.Fetcher
	urls       URLBuilder
	videoDelay time.Duration
	timeout    time.Duration
	bus        eventbus.EventBus
	logger     zerolog.Logger

	ctx    context.Context
	stop   context.CancelFunc
	cancel context.CancelFunc

	state    State
	lastID   uint64
	searchID uint64
	textID   uint64
}

// NewOrchestrator creates an idle orchestrator.
func NewOrchestrator(opts Options) *Orchestrator {
	ctx, stop := context.WithCancel(context.Background())
	return &Orchestrator{
		fetcher:    opts.Fetcher,
		urls:       opts.URLs,
		videoDelay: opts.VideoDelay,
		timeout:    opts.Timeout,
		bus:        opts.Bus,
		logger:     opts.Logger.With().Str("component", "search").Logger(),
		ctx:        ctx,
		stop:       stop,
	}
}

// State returns a copy of the current search state.
func (o *Orchestrator) State() State {
	s := o.state
	if s.Description != nil {
		d := *s.Description
		s.Description = &d
	}
	return s
}

// Current returns the request the current search was launched with.
func (o *Orchestrator) Current() Request {
	return Request{ID: o.searchID, Term: o.state.Term}
}

// PracticeVisible reports whether the practice panel should be shown.
func (o *Orchestrator) PracticeVisible() bool { return o.state.PracticeVisible() }

// CanSubmit reports whether input may start a new search.
func (o *Orchestrator) CanSubmit(input string) bool { return o.state.CanSubmit(input) }

// Settled reports whether both lookups of the current search finished.
func (o *Orchestrator) Settled() bool { return o.state.Settled() }

// TriggerSearch resets the state for term and returns the command that runs
// both lookups. Any lookup still in flight for an earlier search is cancelled
// and its completion will be ignored.
func (o *Orchestrator) TriggerSearch(term string) (tea.Cmd, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	o.cancelText()
	o.state = State{
		Term:           term,
		IsLoadingVideo: true,
		IsLoadingText:  true,
	}
	req := o.next(term)
	o.searchID = req.ID
	o.textID = req.ID

	o.logger.Info().Uint64("req", req.ID).Str("term", term).Msg("search started")
	o.publish(eventbus.SearchStartedEvent{RequestID: req.ID, Term: term})

	return tea.Batch(o.describeCmd(req), o.videoCmd(req)), nil
}

// RetryDescription re-runs only the text lookup of the current search after
// it failed. The video state is left alone.
func (o *Orchestrator) RetryDescription() (tea.Cmd, error) {
	if !o.state.TextFailed() {
		return nil, ErrNothingToRetry
	}

	o.cancelText()
	req := o.next(o.state.Term)
	o.textID = req.ID
	o.state.IsLoadingText = true
	o.state.Error = ""

	o.logger.Info().Uint64("req", req.ID).Str("term", req.Term).Msg("retrying description")
	return o.describeCmd(req), nil
}

// Apply merges a settle message into the state. It returns false for
// messages it does not handle and for completions of superseded lookups.
func (o *Orchestrator) Apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case DescriptionSettledMsg:
		if msg.Request.ID != o.textID {
			o.dropStale(msg.Request, "text")
			return false
		}
		o.applyDescription(msg)
		return true
	case VideoSettledMsg:
		if msg.Request.ID != o.searchID {
			o.dropStale(msg.Request, "video")
			return false
		}
		o.applyVideo(msg)
		return true
	}
	return false
}

// Close cancels any lookup still running.
func (o *Orchestrator) Close() {
	o.stop()
}

func (o *Orchestrator) applyDescription(msg DescriptionSettledMsg) {
	o.cancelText()
	o.state.IsLoadingText = false
	if msg.Err != nil {
		o.state.Description = nil
		o.state.Error = failureMessage(msg.Request.Term, msg.Err)
		o.logger.Warn().Err(msg.Err).Uint64("req", msg.Request.ID).Str("term", msg.Request.Term).Msg("description failed")
	} else {
		d := msg.Description
		o.state.Description = &d
		o.state.Error = ""
		o.logger.Info().Uint64("req", msg.Request.ID).Str("term", msg.Request.Term).Msg("description settled")
	}
	o.publish(eventbus.DescriptionSettledEvent{RequestID: msg.Request.ID, Term: msg.Request.Term, Err: msg.Err})
}

func (o *Orchestrator) applyVideo(msg VideoSettledMsg) {
	o.state.IsLoadingVideo = false
	if msg.Err != nil {
		o.state.VideoURL = ""
		o.logger.Error().Err(msg.Err).Uint64("req", msg.Request.ID).Msg("video url failed")
	} else {
		o.state.VideoURL = msg.URL
		o.logger.Info().Uint64("req", msg.Request.ID).Str("url", msg.URL).Msg("video settled")
	}
	o.publish(eventbus.VideoSettledEvent{RequestID: msg.Request.ID, Term: msg.Request.Term, URL: msg.URL})
}

func (o *Orchestrator) dropStale(req Request, lookup string) {
	o.logger.Debug().
		Uint64("req", req.ID).
		Uint64("current", o.searchID).
		Str("term", req.Term).
		Str("lookup", lookup).
		Msg("dropping stale completion")
	o.publish(eventbus.StaleCompletionDroppedEvent{
		RequestID: req.ID,
		CurrentID: o.searchID,
		Term:      req.Term,
		Lookup:    lookup,
	})
}

func (o *Orchestrator) describeCmd(req Request) tea.Cmd {
	var ctx context.Context
	if o.timeout > 0 {
		ctx, o.cancel = context.WithTimeout(o.ctx, o.timeout)
	} else {
		ctx, o.cancel = context.WithCancel(o.ctx)
	}
	fetcher := o.fetcher
	return func() tea.Msg {
		desc, err := fetcher.FetchDescription(ctx, req.Term)
		return DescriptionSettledMsg{Request: req, Description: desc, Err: err}
	}
}

func (o *Orchestrator) videoCmd(req Request) tea.Cmd {
	urls := o.urls
	return tea.Tick(o.videoDelay, func(time.Time) tea.Msg {
		url, err := urls.Build(req.Term)
		return VideoSettledMsg{Request: req, URL: url, Err: err}
	})
}

func (o *Orchestrator) next(term string) Request {
	o.lastID++
	return Request{ID: o.lastID, Term: term}
}

func (o *Orchestrator) cancelText() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

func (o *Orchestrator) publish(event eventbus.DomainEvent) {
	if o.bus != nil {
		o.bus.Publish(event)
	}
}

func failureMessage(term string, err error) string {
	var reason string
	switch {
	case errors.Is(err, describe.ErrNoDescription):
		reason = "no sign found"
	case errors.Is(err, describe.ErrMalformedResponse):
		reason = "the model gave an unexpected answer"
	case errors.Is(err, describe.ErrMissingAPIKey):
		reason = "no API key configured"
	case errors.Is(err, context.DeadlineExceeded):
		reason = "request timed out"
	default:
		reason = err.Error()
	}
	return fmt.Sprintf("couldn't describe %q: %s", term, reason)
}
