package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/olegiv/eventhub-go/internal/model"
)

func testEvents() []model.Event {
	return []model.Event{
		{ID: "evt_1", Title: "Music Festival", Date: "2025-07-20", Location: "Central Park"},
		{ID: "evt_2", Title: "Art Exhibition", Date: "2025-08-05", Location: "City Gallery"},
	}
}

func TestEventListCacheLoadsOnMiss(t *testing.T) {
	backend := NewSimpleMemoryCache(time.Minute)
	defer backend.Close()

	loads := 0
	c := NewEventListCache(backend, time.Minute, func(ctx context.Context) ([]model.Event, error) {
		loads++
		return testEvents(), nil
	})

	ctx := context.Background()

	got, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "evt_1" {
		t.Errorf("List = %+v, want loader events", got)
	}
	if loads != 1 {
		t.Fatalf("loads = %d, want 1", loads)
	}

	// Second read comes from cache.
	if _, err := c.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if loads != 1 {
		t.Errorf("loads after cached read = %d, want 1", loads)
	}
}

func TestEventListCacheInvalidate(t *testing.T) {
	backend := NewSimpleMemoryCache(time.Minute)
	defer backend.Close()

	loads := 0
	c := NewEventListCache(backend, time.Minute, func(ctx context.Context) ([]model.Event, error) {
		loads++
		return testEvents(), nil
	})

	ctx := context.Background()
	_, _ = c.List(ctx)
	c.Invalidate(ctx)
	_, _ = c.List(ctx)

	if loads != 2 {
		t.Errorf("loads after invalidation = %d, want 2", loads)
	}
}

func TestEventListCacheLoaderError(t *testing.T) {
	backend := NewSimpleMemoryCache(time.Minute)
	defer backend.Close()

	wantErr := errors.New("boom")
	c := NewEventListCache(backend, time.Minute, func(ctx context.Context) ([]model.Event, error) {
		return nil, wantErr
	})

	if _, err := c.List(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("List error = %v, want %v", err, wantErr)
	}
}
