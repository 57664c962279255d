// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olegiv/eventhub-go/internal/model"
	"github.com/olegiv/eventhub-go/internal/store"
)

// FeaturedCount is how many events the home page features, in stored
// order (no date sorting).
const FeaturedCount = 3

// ErrEventIncomplete is returned when a required event field is empty.
// Presence checks only; there is no further validation.
var ErrEventIncomplete = errors.New("all event fields are required")

// EventForm holds the create-event form fields.
type EventForm struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
}

// EventRoster pairs an event with its participant bucket for the
// dashboard view.
type EventRoster struct {
	Event        model.Event
	Participants []model.Participant
}

// EventService implements the event listing and creation operations.
type EventService struct {
	store *store.Storage
	now   func() time.Time
}

// NewEventService creates a new EventService.
func NewEventService(s *store.Storage) *EventService {
	return &EventService{store: s, now: time.Now}
}

// All returns every event in stored order.
func (s *EventService) All(ctx context.Context) []model.Event {
	return s.store.Events(ctx)
}

// Featured returns the first FeaturedCount events in stored order.
func (s *EventService) Featured(ctx context.Context) []model.Event {
	events := s.store.Events(ctx)
	if len(events) > FeaturedCount {
		events = events[:FeaturedCount]
	}
	return events
}

// Search filters events by case-insensitive substring match over
// title, description, and location. A blank query returns all events.
func (s *EventService) Search(ctx context.Context, query string) []model.Event {
	return FilterEvents(s.store.Events(ctx), query)
}

// FilterEvents applies the explore search predicate to an in-memory
// event list: case-insensitive substring match over title, description,
// and location. A blank query returns the list unchanged.
func FilterEvents(events []model.Event, query string) []model.Event {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return events
	}

	var matched []model.Event
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Title), query) ||
			strings.Contains(strings.ToLower(ev.Description), query) ||
			strings.Contains(strings.ToLower(ev.Location), query) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// Owned returns the events belonging to adminEmail, each with its
// participant roster (empty slice when no one registered yet). The
// result is exactly the subset of events whose AdminEmail matches.
func (s *EventService) Owned(ctx context.Context, adminEmail string) []EventRoster {
	participants := s.store.Participants(ctx)

	var owned []EventRoster
	for _, ev := range s.store.Events(ctx) {
		if ev.AdminEmail != adminEmail {
			continue
		}
		owned = append(owned, EventRoster{
			Event:        ev,
			Participants: participants[ev.ID],
		})
	}
	return owned
}

// Create appends a new event owned by adminEmail. The identifier and
// placeholder image are derived from the creation timestamp, matching
// the persisted token formats ("evt_<millis>", picsum URL).
func (s *EventService) Create(ctx context.Context, adminEmail string, form EventForm) (model.Event, error) {
	if strings.TrimSpace(form.Title) == "" ||
		strings.TrimSpace(form.Description) == "" ||
		strings.TrimSpace(form.Date) == "" ||
		strings.TrimSpace(form.Time) == "" ||
		strings.TrimSpace(form.Location) == "" {
		return model.Event{}, ErrEventIncomplete
	}

	millis := s.now().UnixMilli()
	event := model.Event{
		ID:          fmt.Sprintf("evt_%d", millis),
		Title:       form.Title,
		Description: form.Description,
		Date:        form.Date,
		Time:        form.Time,
		Location:    form.Location,
		AdminEmail:  adminEmail,
		Image:       fmt.Sprintf("https://picsum.photos/400/200?random=%d", millis),
	}

	events := append(s.store.Events(ctx), event)
	if err := s.store.WriteEvents(ctx, events); err != nil {
		return model.Event{}, err
	}
	return event, nil
}
