package describe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signassist/internal/domain"
)

func TestOfflineFetcherKnowsDefaultSuggestions(t *testing.T) {
	f := NewOfflineFetcher()
	for _, term := range domain.DefaultSuggestions {
		desc, err := f.FetchDescription(context.Background(), term)
		require.NoError(t, err, term)
		assert.NotEmpty(t, desc.HandShape, term)
		assert.NotEmpty(t, desc.Movement, term)
	}
}

func TestOfflineFetcherIgnoresCaseAndSpacing(t *testing.T) {
	f := NewOfflineFetcher()
	a, err := f.FetchDescription(context.Background(), "Thank you")
	require.NoError(t, err)
	b, err := f.FetchDescription(context.Background(), "  THANK   you ")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOfflineFetcherUnknownTerm(t *testing.T) {
	_, err := NewOfflineFetcher().FetchDescription(context.Background(), "xylophone")
	assert.ErrorIs(t, err, ErrNoDescription)
}

func TestOfflineFetcherEmptyTerm(t *testing.T) {
	_, err := NewOfflineFetcher().FetchDescription(context.Background(), " \t")
	assert.ErrorIs(t, err, ErrEmptyTerm)
}

func TestOfflineFetcherCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewOfflineFetcher().FetchDescription(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOfflineTermsMatchesTable(t *testing.T) {
	assert.Len(t, OfflineTerms(), len(domain.DefaultSuggestions))
}
