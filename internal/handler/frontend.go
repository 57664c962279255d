// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/eventhub-go/internal/cache"
	"github.com/olegiv/eventhub-go/internal/model"
	"github.com/olegiv/eventhub-go/internal/render"
	"github.com/olegiv/eventhub-go/internal/service"
	"github.com/olegiv/eventhub-go/internal/session"
	"github.com/olegiv/eventhub-go/internal/store"
)

// FrontendHandler handles the public pages: home, explore and the
// theme toggle.
type FrontendHandler struct {
	events         *service.EventService
	eventList      *cache.EventListCache
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewFrontendHandler creates a new FrontendHandler. eventList may be
// nil, in which case listings read the store directly.
func NewFrontendHandler(s *store.Storage, eventList *cache.EventListCache, renderer *render.Renderer, sm *scs.SessionManager) *FrontendHandler {
	return &FrontendHandler{
		events:         service.NewEventService(s),
		eventList:      eventList,
		renderer:       renderer,
		sessionManager: sm,
	}
}

// listEvents returns the full event list, from cache when available.
func (h *FrontendHandler) listEvents(r *http.Request) []model.Event {
	if h.eventList != nil {
		if events, err := h.eventList.List(r.Context()); err == nil {
			return events
		}
	}
	return h.events.All(r.Context())
}

// Home renders the homepage with the first three events featured.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	events := h.listEvents(r)
	if len(events) > service.FeaturedCount {
		events = events[:service.FeaturedCount]
	}

	if err := h.renderer.Render(w, r, "home", render.TemplateData{
		Title: "Home",
		Data:  events,
	}); err != nil {
		logAndInternalError(w, "rendering home page", "error", err)
	}
}

// exploreCard is one event card on the explore page. SearchText feeds
// the client-side live filter.
type exploreCard struct {
	model.Event
	SearchText string
}

// exploreData is the view model for the explore page.
type exploreData struct {
	Query  string
	Events []exploreCard
}

// Explore renders all events as searchable cards. The optional ?q=
// parameter pre-filters server-side; subsequent keystrokes filter the
// rendered set client-side without another round trip.
func (h *FrontendHandler) Explore(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	events := h.listEvents(r)
	if query != "" {
		events = service.FilterEvents(events, query)
	}

	data := exploreData{Query: query}
	for _, ev := range events {
		data.Events = append(data.Events, exploreCard{
			Event:      ev,
			SearchText: strings.ToLower(ev.Title + " " + ev.Description + " " + ev.Location),
		})
	}

	if err := h.renderer.Render(w, r, "explore", render.TemplateData{
		Title: "Explore Events",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "rendering explore page", "error", err)
	}
}

// ToggleTheme flips the dark mode preference and redirects back to the
// referring page.
func (h *FrontendHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	theme := session.ThemeEnabled
	if h.sessionManager.GetString(ctx, session.KeyTheme) == session.ThemeEnabled {
		theme = session.ThemeDisabled
	}
	h.sessionManager.Put(ctx, session.KeyTheme, theme)

	target := r.Header.Get("Referer")
	if target == "" {
		target = RouteRoot
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
