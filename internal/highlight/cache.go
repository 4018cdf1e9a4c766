// Package highlight turns lexical highlight events into positioned glyphs.
package highlight

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	path string
	text string
}

// CachedParser memoises event streams per exact (path, text) pair, so a
// stream is only ever handed back for the text it was generated from.
type CachedParser struct {
	next  Parser
	cache *lru.Cache[cacheKey, []Event]
}

// NewCachedParser wraps next with an LRU of the given size.
func NewCachedParser(next Parser, size int) (*CachedParser, error) {
	cache, err := lru.New[cacheKey, []Event](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create highlight cache: %w", err)
	}
	return &CachedParser{next: next, cache: cache}, nil
}

// Parse returns cached events or delegates to the wrapped parser.
func (c *CachedParser) Parse(path, text string) ([]Event, error) {
	key := cacheKey{path: path, text: text}
	if events, ok := c.cache.Get(key); ok {
		return events, nil
	}
	events, err := c.next.Parse(path, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, events)
	return events, nil
}

// Len returns the number of cached streams.
func (c *CachedParser) Len() int {
	return c.cache.Len()
}
