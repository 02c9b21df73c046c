package viewcache

import (
	"context"
	"fmt"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// broadcaster tells other instances which views went stale.
type broadcaster interface {
	PublishInvalidation(ctx context.Context, keys []domain.ViewKey) error
}

// Invalidator drops views from the local cache and, when a broadcaster is
// configured, from every other instance's cache too.
type Invalidator struct {
	cache *Cache
	bcast broadcaster
}

// NewInvalidator returns an Invalidator. cache may be nil when caching is
// disabled, and bcast may be nil for a single instance.
func NewInvalidator(cache *Cache, bcast broadcaster) *Invalidator {
	return &Invalidator{cache: cache, bcast: bcast}
}

// Invalidate clears the views locally first, so this instance never serves a
// stale view even when the broadcast fails.
func (i *Invalidator) Invalidate(ctx context.Context, keys ...domain.ViewKey) error {
	if len(keys) == 0 {
		return nil
	}
	if i.cache != nil {
		if err := i.cache.Invalidate(ctx, keys...); err != nil {
			return err
		}
	}
	if i.bcast == nil {
		return nil
	}
	if err := i.bcast.PublishInvalidation(ctx, keys); err != nil {
		return fmt.Errorf("broadcast invalidation: %w", err)
	}
	return nil
}
