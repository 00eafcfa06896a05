package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signassist/internal/config"
	"signassist/internal/describe"
	"signassist/internal/domain"
	"signassist/internal/search"
	"signassist/internal/ui/state"
	"signassist/internal/videourl"
)

type failingFetcher struct{}

func (failingFetcher) FetchDescription(context.Context, string) (domain.SignDescription, error) {
	return domain.SignDescription{}, errors.New("offline")
}

func newExecutor(t *testing.T, fetcher describe.Fetcher) (*Executor, *state.AppState, *search.Orchestrator) {
	t.Helper()
	builder, err := videourl.NewBuilder(config.DefaultURLTemplate)
	require.NoError(t, err)
	o := search.NewOrchestrator(search.Options{
		Fetcher: fetcher,
		URLs:    builder,
		Logger:  zerolog.Nop(),
	})
	t.Cleanup(o.Close)
	s := state.NewAppState(domain.DefaultSuggestions)
	return NewExecutor(s, o, nil), s, o
}

func TestSubmitStartsSearch(t *testing.T) {
	e, s, o := newExecutor(t, describe.NewOfflineFetcher())
	s.SetStatus(state.StatusWarning, "old")

	cmd := e.ExecuteSubmit("Love")
	assert.NotNil(t, cmd)
	assert.Equal(t, "Love", o.State().Term)
	assert.Empty(t, s.StatusMessage)
}

func TestSubmitBlockedWhileVideoLoading(t *testing.T) {
	e, s, o := newExecutor(t, describe.NewOfflineFetcher())
	require.NotNil(t, e.ExecuteSubmit("Love"))

	cmd := e.ExecuteSubmit("Yes")
	assert.Nil(t, cmd)
	assert.Equal(t, "Love", o.State().Term)
	assert.Equal(t, state.StatusWarning, s.StatusKind)
}

func TestSubmitEmptyIsIgnored(t *testing.T) {
	e, _, o := newExecutor(t, describe.NewOfflineFetcher())
	assert.Nil(t, e.ExecuteSubmit(""))
	assert.Empty(t, o.State().Term)
}

func TestSubmitBlankShowsHint(t *testing.T) {
	e, s, _ := newExecutor(t, describe.NewOfflineFetcher())
	assert.Nil(t, e.ExecuteSubmit("   "))
	assert.Equal(t, "Type a word to search", s.StatusMessage)
}

func TestSuggestionAllowedWhileLoading(t *testing.T) {
	e, s, o := newExecutor(t, describe.NewOfflineFetcher())
	require.NotNil(t, e.ExecuteSubmit("Love"))

	cmd := e.ExecuteSuggestion("Family")
	assert.NotNil(t, cmd)
	assert.Equal(t, "Family", o.State().Term)
	word, _ := s.CurrentSuggestion()
	assert.Equal(t, "Family", word)
}

func TestRetryWithoutFailure(t *testing.T) {
	e, s, _ := newExecutor(t, describe.NewOfflineFetcher())
	assert.Nil(t, e.ExecuteRetry())
	assert.Equal(t, "Nothing to retry", s.StatusMessage)
}

func TestRetryAfterFailure(t *testing.T) {
	e, s, o := newExecutor(t, failingFetcher{})
	require.NotNil(t, e.ExecuteSubmit("Help"))

	req := o.Current()
	o.Apply(search.DescriptionSettledMsg{Request: req, Err: errors.New("offline")})
	require.True(t, o.State().TextFailed())

	cmd := e.ExecuteRetry()
	assert.NotNil(t, cmd)
	assert.True(t, o.State().IsLoadingText)
	assert.Equal(t, `Asking again about "Help"`, s.StatusMessage)
}
