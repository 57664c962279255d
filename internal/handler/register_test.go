// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegisterFormListsEventOptions(t *testing.T) {
	env := newTestEnv(t)
	rh := NewRegisterHandler(env.storage, env.rend)

	req := httptest.NewRequest(http.MethodGet, RouteRegister, nil)
	rec := env.do(t, rh.Form, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Select an event...") {
		t.Error("register form missing select placeholder")
	}
	if !strings.Contains(body, "Cloud Security Summit 2025 (2025-12-03)") {
		t.Error("register form missing labeled event option")
	}
}

func TestRegisterFormEmptyStore(t *testing.T) {
	env := newTestEnv(t)
	if err := env.storage.WriteEvents(context.Background(), nil); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	rh := NewRegisterHandler(env.storage, env.rend)

	req := httptest.NewRequest(http.MethodGet, RouteRegister, nil)
	rec := env.do(t, rh.Form, req, nil)

	if !strings.Contains(rec.Body.String(), "No events are currently available.") {
		t.Error("register form missing empty-store placeholder")
	}
}

func TestRegisterAppendsParticipant(t *testing.T) {
	env := newTestEnv(t)
	rh := NewRegisterHandler(env.storage, env.rend)

	req := httptest.NewRequest(http.MethodPost, RouteRegister, nil)
	req.Form = map[string][]string{
		"fullName": {"Jane"},
		"email":    {"j@x.com"},
		"eventId":  {"evt_1"},
	}
	rec := env.do(t, rh.Register, req, nil)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != RouteRegister {
		t.Errorf("Location = %q, want %q", loc, RouteRegister)
	}

	bucket := env.storage.Participants(context.Background())["evt_1"]
	if len(bucket) != 1 {
		t.Fatalf("evt_1 bucket length = %d, want 1", len(bucket))
	}
	if bucket[0].Name != "Jane" || bucket[0].Email != "j@x.com" {
		t.Errorf("unexpected participant: %+v", bucket[0])
	}

	// The success flash appears on the follow-up page render.
	form := httptest.NewRequest(http.MethodGet, RouteRegister, nil)
	rec2 := env.do(t, rh.Form, form, rec)
	if !strings.Contains(rec2.Body.String(), "Registered Jane for the selected event.") {
		t.Error("missing registration success message")
	}
}

func TestRegisterMissingFieldsPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	rh := NewRegisterHandler(env.storage, env.rend)

	req := httptest.NewRequest(http.MethodPost, RouteRegister, nil)
	req.Form = map[string][]string{
		"fullName": {"Jane"},
		// email and eventId missing
	}
	rec := env.do(t, rh.Register, req, nil)

	if loc := rec.Header().Get("Location"); loc != RouteRegister {
		t.Errorf("Location = %q, want %q", loc, RouteRegister)
	}
	if got := len(env.storage.Participants(context.Background())); got != 0 {
		t.Errorf("participants map length = %d, want 0", got)
	}
}

func TestRegisterLeavesOtherBucketsAlone(t *testing.T) {
	env := newTestEnv(t)
	rh := NewRegisterHandler(env.storage, env.rend)

	for _, eventID := range []string{"evt_1", "evt_2", "evt_1"} {
		req := httptest.NewRequest(http.MethodPost, RouteRegister, nil)
		req.Form = map[string][]string{
			"fullName": {"Visitor"},
			"email":    {"v@example.com"},
			"eventId":  {eventID},
		}
		env.do(t, rh.Register, req, nil)
	}

	participants := env.storage.Participants(context.Background())
	if len(participants["evt_1"]) != 2 {
		t.Errorf("evt_1 bucket length = %d, want 2", len(participants["evt_1"]))
	}
	if len(participants["evt_2"]) != 1 {
		t.Errorf("evt_2 bucket length = %d, want 1", len(participants["evt_2"]))
	}
}
