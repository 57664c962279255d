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

// ErrRegistrationIncomplete is returned when name, email, or the
// selected event is missing. Nothing is persisted in that case.
var ErrRegistrationIncomplete = errors.New("please fill required fields: name, email and event")

// RegistrationForm holds the registration form fields.
type RegistrationForm struct {
	Name     string
	Email    string
	Phone    string
	Comments string
	EventID  string
}

// EventOption is one entry of the registration page's event select.
type EventOption struct {
	ID    string
	Label string
}

// RegistrationService appends participant registrations to per-event
// buckets.
type RegistrationService struct {
	store *store.Storage
	now   func() time.Time
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(s *store.Storage) *RegistrationService {
	return &RegistrationService{store: s, now: time.Now}
}

// EventOptions lists all events as select options labeled
// "Title (date)", in stored order.
func (s *RegistrationService) EventOptions(ctx context.Context) []EventOption {
	var options []EventOption
	for _, ev := range s.store.Events(ctx) {
		options = append(options, EventOption{
			ID:    ev.ID,
			Label: fmt.Sprintf("%s (%s)", ev.Title, ev.Date),
		})
	}
	return options
}

// Register appends a participant to the selected event's bucket,
// creating the bucket if absent. Other buckets are untouched. There is
// no uniqueness constraint — duplicate registrations are permitted —
// and no referential check that the event ID exists.
func (s *RegistrationService) Register(ctx context.Context, form RegistrationForm) (model.Participant, error) {
	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)

	if name == "" || email == "" || form.EventID == "" {
		return model.Participant{}, ErrRegistrationIncomplete
	}

	participant := model.Participant{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(form.Phone),
		Comments:     strings.TrimSpace(form.Comments),
		RegisteredOn: s.now().UTC().Format(time.RFC3339),
	}

	participants := s.store.Participants(ctx)
	participants[form.EventID] = append(participants[form.EventID], participant)
	if err := s.store.WriteParticipants(ctx, participants); err != nil {
		return model.Participant{}, err
	}
	return participant, nil
}
