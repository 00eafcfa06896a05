package describe

import (
	"context"
	"fmt"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"

	"signassist/internal/domain"
)

// CachedFetcher remembers successful descriptions by normalized term.
// Failures are never cached.
type CachedFetcher struct {
	next  Fetcher
	cache *lru.Cache[string, domain.SignDescription]
}

// NewCachedFetcher wraps next with an LRU of the given size.
func NewCachedFetcher(next Fetcher, size int) (*CachedFetcher, error) {
	cache, err := lru.New[string, domain.SignDescription](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create description cache: %w", err)
	}
	return &CachedFetcher{next: next, cache: cache}, nil
}

// FetchDescription implements Fetcher.
func (c *CachedFetcher) FetchDescription(ctx context.Context, term string) (domain.SignDescription, error) {
	term, err := checkTerm(term)
	if err != nil {
		return domain.SignDescription{}, err
	}
	key := cacheKey(term)
	if desc, ok := c.cache.Get(key); ok {
		return desc, nil
	}
	desc, err := c.next.FetchDescription(ctx, term)
	if err != nil {
		return domain.SignDescription{}, err
	}
	c.cache.Add(key, desc)
	return desc, nil
}

// Len returns the number of cached descriptions.
func (c *CachedFetcher) Len() int {
	return c.cache.Len()
}

// Close closes the wrapped fetcher when it holds resources.
func (c *CachedFetcher) Close() error {
	if closer, ok := c.next.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
