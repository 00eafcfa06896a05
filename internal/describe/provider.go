package describe

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"signassist/internal/config"
	"signassist/internal/domain"
)

// New builds the fetcher selected by cfg, wrapped with logging and, when
// cache_size is positive, an LRU cache.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Fetcher, error) {
	var base Fetcher
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		f, err := NewGeminiFetcher(ctx, cfg.APIKey(), cfg.ModelName())
		if err != nil {
			return nil, err
		}
		base = f
	case config.ProviderOpenAI:
		f, err := NewOpenAIFetcher(cfg.APIKey(), cfg.ModelName(), cfg.AI.BaseURL)
		if err != nil {
			return nil, err
		}
		base = f
	case config.ProviderOffline:
		base = NewOfflineFetcher()
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", config.ErrInvalidConfig, cfg.AI.Provider)
	}

	var fetcher Fetcher = &loggingFetcher{
		next:     base,
		provider: cfg.AI.Provider,
		logger:   logger.With().Str("component", "describe").Logger(),
	}
	if cfg.AI.CacheSize > 0 {
		cached, err := NewCachedFetcher(fetcher, cfg.AI.CacheSize)
		if err != nil {
			Close(base)
			return nil, err
		}
		fetcher = cached
	}
	return fetcher, nil
}

// Close releases f if it holds resources.
func Close(f Fetcher) error {
	if closer, ok := f.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type loggingFetcher struct {
	next     Fetcher
	provider string
	logger   zerolog.Logger
}

func (l *loggingFetcher) FetchDescription(ctx context.Context, term string) (domain.SignDescription, error) {
	start := time.Now()
	desc, err := l.next.FetchDescription(ctx, term)
	ev := l.logger.Debug()
	if err != nil {
		ev = l.logger.Warn().Err(err)
	}
	ev.Str("provider", l.provider).
		Str("term", term).
		Dur("elapsed", time.Since(start)).
		Msg("description lookup finished")
	return desc, err
}

func (l *loggingFetcher) Close() error {
	return Close(l.next)
}

// unavailableFetcher fails every lookup with the error that kept the
// provider from starting.
type unavailableFetcher struct {
	err error
}

// Unavailable returns a Fetcher whose lookups all fail with err. The UI uses
// it so a missing key shows up next to each search instead of at startup.
func Unavailable(err error) Fetcher {
	return unavailableFetcher{err: err}
}

func (u unavailableFetcher) FetchDescription(ctx context.Context, term string) (domain.SignDescription, error) {
	if _, err := checkTerm(term); err != nil {
		return domain.SignDescription{}, err
	}
	return domain.SignDescription{}, u.err
}
