// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"time"

	"github.com/olegiv/eventhub-go/internal/model"
)

// eventListKey is the cache key for the full public event list.
const eventListKey = "events:list"

// EventListCache caches the published event list that backs the home and
// explore pages. The list is invalidated whenever the event collection
// changes, so the TTL only bounds staleness across process restarts of a
// shared Redis backend.
type EventListCache struct {
	typed  *TypedCache[[]model.Event]
	loader func(ctx context.Context) ([]model.Event, error)
}

// NewEventListCache creates an event list cache backed by the given cache.
// loader fetches the list on a miss.
func NewEventListCache(c Cache, ttl time.Duration, loader func(ctx context.Context) ([]model.Event, error)) *EventListCache {
	return &EventListCache{
		typed:  NewTypedCache[[]model.Event](c, ttl),
		loader: loader,
	}
}

// List returns the cached event list, loading and caching it on a miss.
func (c *EventListCache) List(ctx context.Context) ([]model.Event, error) {
	events, err := c.typed.GetOrSet(ctx, eventListKey, func() (*[]model.Event, error) {
		list, err := c.loader(ctx)
		if err != nil {
			return nil, err
		}
		return &list, nil
	})
	if err != nil {
		return nil, err
	}
	return *events, nil
}

// Invalidate drops the cached list. Call it when events change.
func (c *EventListCache) Invalidate(ctx context.Context) {
	_ = c.typed.Delete(ctx, eventListKey)
}
