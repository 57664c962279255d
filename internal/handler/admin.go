// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/eventhub-go/internal/middleware"
	"github.com/olegiv/eventhub-go/internal/render"
	"github.com/olegiv/eventhub-go/internal/service"
	"github.com/olegiv/eventhub-go/internal/store"
)

// AdminHandler handles the organizer dashboard and event creation.
type AdminHandler struct {
	storage  *store.Storage
	events   *service.EventService
	renderer *render.Renderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(s *store.Storage, renderer *render.Renderer) *AdminHandler {
	return &AdminHandler{
		storage:  s,
		events:   service.NewEventService(s),
		renderer: renderer,
	}
}

// Dashboard renders the organizer's events with their participant
// rosters.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
		return
	}

	rosters := h.events.Owned(r.Context(), admin.Email)

	if err := h.renderer.Render(w, r, "dashboard", render.TemplateData{
		Title: "Dashboard",
		Data:  rosters,
	}); err != nil {
		logAndInternalError(w, "rendering dashboard", "error", err)
	}
}

// NewEventForm renders the create-event page.
func (h *AdminHandler) NewEventForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "event_new", render.TemplateData{
		Title: "Create New Event",
		Data:  service.EventForm{},
	}); err != nil {
		logAndInternalError(w, "rendering create event page", "error", err)
	}
}

// CreateEvent handles the create-event submission and redirects to the
// dashboard.
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
		return
	}

	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminEventNew) {
		return
	}

	form := service.EventForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Location:    r.FormValue("location"),
	}

	event, err := h.events.Create(r.Context(), admin.Email, form)
	if err != nil {
		if errors.Is(err, service.ErrEventIncomplete) {
			flashError(w, r, h.renderer, RouteAdminEventNew, "All fields are required.")
			return
		}
		logAndInternalError(w, "creating event", "error", err)
		return
	}

	slog.Info("event created", "event_id", event.ID, "admin", admin.Email)
	flashSuccess(w, r, h.renderer, RouteAdmin,
		fmt.Sprintf("Event %q has been created!", event.Title))
}

// Stream pushes a server-sent event whenever the events or participants
// collections change, so an open dashboard can refresh its rosters.
// The connection ends when the client disconnects or the request times
// out; EventSource reconnects on its own.
func (h *AdminHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	changes, cancel := h.storage.Watch(store.KeyEvents, store.KeyParticipants)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case key, open := <-changes:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", key)
			flusher.Flush()
		}
	}
}
