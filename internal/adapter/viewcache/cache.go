// Package viewcache holds rendered read views so repeated GETs skip the
// database until a mutation invalidates them.
package viewcache

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// Entry is one rendered response body.
type Entry struct {
	ContentType string
	Body        []byte
}

// Cache is a size- and age-bounded store of rendered views, safe for
// concurrent use. Entries are keyed "<view>" or "<view>?<query>".
type Cache struct {
	lru *expirable.LRU[string, Entry]
	log *slog.Logger
}

// New creates a cache holding at most size entries for at most ttl each.
func New(size int, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, Entry](size, nil, ttl),
		log: log.With("component", "viewcache"),
	}
}

// EntryKey builds the cache key of a view rendered for the given canonical query.
func EntryKey(view domain.ViewKey, query string) string {
	if query == "" {
		return view.String()
	}
	return view.String() + "?" + query
}

// Get returns the cached entry, if any.
func (c *Cache) Get(key string) (Entry, bool) {
	return c.lru.Get(key)
}

// Set stores an entry.
func (c *Cache) Set(key string, e Entry) {
	c.lru.Add(key, e)
}

// Len is the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Invalidate drops every entry covered by any of the keys. It never fails.
func (c *Cache) Invalidate(ctx context.Context, keys ...domain.ViewKey) error {
	removed := 0
	for _, k := range c.lru.Keys() {
		for _, view := range keys {
			if view.Covers(k) {
				if c.lru.Remove(k) {
					removed++
				}
				break
			}
		}
	}

	c.log.DebugContext(ctx, "views invalidated",
		slog.Any("views", keys),
		slog.Int("removed", removed),
	)
	return nil
}
