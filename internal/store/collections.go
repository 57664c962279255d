// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"

	"github.com/olegiv/eventhub-go/internal/model"
)

// Typed collection accessors. These form the serialization boundary:
// schema mismatch or corruption fails closed to an empty collection of
// the correct shape.

// Admins returns the full admins collection, oldest first.
func (s *Storage) Admins(ctx context.Context) []model.Admin {
	var admins []model.Admin
	s.Read(ctx, KeyAdmins, &admins)
	return admins
}

// WriteAdmins replaces the admins collection.
func (s *Storage) WriteAdmins(ctx context.Context, admins []model.Admin) error {
	return s.Write(ctx, KeyAdmins, admins)
}

// Events returns the full events collection in stored (insertion) order.
func (s *Storage) Events(ctx context.Context) []model.Event {
	var events []model.Event
	s.Read(ctx, KeyEvents, &events)
	return events
}

// WriteEvents replaces the events collection.
func (s *Storage) WriteEvents(ctx context.Context, events []model.Event) error {
	return s.Write(ctx, KeyEvents, events)
}

// Participants returns the mapping from event ID to its registration
// bucket. Buckets preserve registration order. The map is never nil.
func (s *Storage) Participants(ctx context.Context) map[string][]model.Participant {
	participants := make(map[string][]model.Participant)
	s.Read(ctx, KeyParticipants, &participants)
	return participants
}

// WriteParticipants replaces the participants mapping.
func (s *Storage) WriteParticipants(ctx context.Context, participants map[string][]model.Participant) error {
	return s.Write(ctx, KeyParticipants, participants)
}
