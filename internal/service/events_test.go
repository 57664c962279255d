package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/eventhub-go/internal/model"
	"github.com/olegiv/eventhub-go/internal/store"
	"github.com/olegiv/eventhub-go/internal/testutil"
)

func TestFeaturedReturnsFirstThreeInStoredOrder(t *testing.T) {
	events := NewEventService(seededStorage(t))

	featured := events.Featured(context.Background())
	require.Len(t, featured, 3)
	assert.Equal(t, "web-dev", featured[0].ID)
	assert.Equal(t, "ai-ml", featured[1].ID)
	assert.Equal(t, "startup", featured[2].ID)
}

func TestFeaturedEmptyCollection(t *testing.T) {
	events := NewEventService(testutil.TestStorage(t))
	assert.Empty(t, events.Featured(context.Background()))
}

func TestSearchCloudMatchesOnlySummit(t *testing.T) {
	events := NewEventService(seededStorage(t))

	for _, query := range []string{"cloud", "CLOUD", "  Cloud "} {
		matched := events.Search(context.Background(), query)
		require.Len(t, matched, 1, "query %q", query)
		assert.Equal(t, "evt_3", matched[0].ID)
	}
}

func TestSearchCoversTitleDescriptionLocation(t *testing.T) {
	events := NewEventService(seededStorage(t))
	ctx := context.Background()

	tests := []struct {
		query   string
		wantIDs []string
	}{
		// Title match.
		{"quantum", []string{"evt_6"}},
		// Description match.
		{"petabytes", []string{"evt_8"}},
		// Location match.
		{"austin", []string{"evt_4"}},
		// No match.
		{"zzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var ids []string
			for _, ev := range events.Search(ctx, tt.query) {
				ids = append(ids, ev.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchBlankQueryReturnsAll(t *testing.T) {
	events := NewEventService(seededStorage(t))
	assert.Len(t, events.Search(context.Background(), "   "), 13)
}

func TestOwnedFiltersByAdminEmail(t *testing.T) {
	s := seededStorage(t)
	events := NewEventService(s)
	ctx := context.Background()

	// Add one event owned by someone else.
	other := model.Event{ID: "evt_other", Title: "Other", AdminEmail: "other@x.com"}
	require.NoError(t, s.WriteEvents(ctx, append(s.Events(ctx), other)))

	owned := events.Owned(ctx, store.DefaultAdminEmail)
	require.Len(t, owned, 13)
	for _, roster := range owned {
		assert.Equal(t, store.DefaultAdminEmail, roster.Event.AdminEmail)
	}

	otherOwned := events.Owned(ctx, "other@x.com")
	require.Len(t, otherOwned, 1)
	assert.Equal(t, "evt_other", otherOwned[0].Event.ID)

	assert.Empty(t, events.Owned(ctx, "nobody@x.com"))
}

func TestOwnedAttachesRosters(t *testing.T) {
	s := seededStorage(t)
	events := NewEventService(s)
	ctx := context.Background()

	jane := model.Participant{Name: "Jane", Email: "j@x.com", RegisteredOn: "2025-10-01T10:00:00Z"}
	require.NoError(t, s.WriteParticipants(ctx, map[string][]model.Participant{
		"evt_1": {jane},
	}))

	for _, roster := range events.Owned(ctx, store.DefaultAdminEmail) {
		if roster.Event.ID == "evt_1" {
			require.Len(t, roster.Participants, 1)
			assert.Equal(t, jane, roster.Participants[0])
		} else {
			assert.Empty(t, roster.Participants)
		}
	}
}

func TestCreateEventAppendsWithGeneratedID(t *testing.T) {
	s := seededStorage(t)
	events := NewEventService(s)
	events.now = func() time.Time { return time.UnixMilli(1764892800000) }
	ctx := context.Background()

	created, err := events.Create(ctx, store.DefaultAdminEmail, EventForm{
		Title:       "Team Offsite",
		Description: "Annual planning offsite.",
		Date:        "2026-08-01",
		Time:        "09:30",
		Location:    "Lisbon",
	})
	require.NoError(t, err)

	assert.Equal(t, "evt_1764892800000", created.ID)
	assert.Equal(t, "https://picsum.photos/400/200?random=1764892800000", created.Image)
	assert.Equal(t, store.DefaultAdminEmail, created.AdminEmail)

	all := s.Events(ctx)
	require.Len(t, all, 14)
	assert.Equal(t, created, all[13])
}

func TestCreateEventMissingFieldWritesNothing(t *testing.T) {
	s := seededStorage(t)
	events := NewEventService(s)
	ctx := context.Background()

	_, err := events.Create(ctx, store.DefaultAdminEmail, EventForm{
		Title: "Incomplete", Description: "x", Date: "2026-01-01", Time: "10:00",
	})
	assert.ErrorIs(t, err, ErrEventIncomplete)
	assert.Len(t, s.Events(ctx), 13)
}
