// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/olegiv/eventhub-go/internal/render"
	"github.com/olegiv/eventhub-go/internal/service"
	"github.com/olegiv/eventhub-go/internal/store"
)

// RegisterHandler handles public participant registration.
type RegisterHandler struct {
	registrations *service.RegistrationService
	renderer      *render.Renderer
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(s *store.Storage, renderer *render.Renderer) *RegisterHandler {
	return &RegisterHandler{
		registrations: service.NewRegistrationService(s),
		renderer:      renderer,
	}
}

// registerData is the view model for the registration page.
type registerData struct {
	Options []service.EventOption
	Form    service.RegistrationForm
}

// Form renders the registration page with the event select populated.
func (h *RegisterHandler) Form(w http.ResponseWriter, r *http.Request) {
	data := registerData{
		Options: h.registrations.EventOptions(r.Context()),
	}

	if err := h.renderer.Render(w, r, "register", render.TemplateData{
		Title: "Register",
		Data:  data,
	}); err != nil {
		logAndInternalError(w, "rendering register page", "error", err)
	}
}

// Register handles the registration form submission. On success the
// form is reset and a transient success message is shown.
func (h *RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteRegister) {
		return
	}

	form := service.RegistrationForm{
		Name:     r.FormValue("fullName"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Comments: r.FormValue("comments"),
		EventID:  r.FormValue("eventId"),
	}

	participant, err := h.registrations.Register(r.Context(), form)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationIncomplete) {
			flashError(w, r, h.renderer, RouteRegister, "Please fill required fields: name, email and event.")
			return
		}
		logAndInternalError(w, "registration error", "error", err)
		return
	}

	slog.Info("participant registered", "event_id", form.EventID, "email", participant.Email)
	flashSuccess(w, r, h.renderer, RouteRegister,
		fmt.Sprintf("Registered %s for the selected event.", participant.Name))
}
