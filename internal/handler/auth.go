// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/eventhub-go/internal/render"
	"github.com/olegiv/eventhub-go/internal/service"
	"github.com/olegiv/eventhub-go/internal/session"
	"github.com/olegiv/eventhub-go/internal/store"
)

// AuthHandler handles the admin login, signup and logout routes.
type AuthHandler struct {
	auth           *service.AuthService
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *store.Storage, renderer *render.Renderer, sm *scs.SessionManager) *AuthHandler {
	return &AuthHandler{
		auth:           service.NewAuthService(s),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// LoginForm renders the login page.
// Already-authenticated admins are sent straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.sessionManager.GetString(r.Context(), session.KeyAdminEmail) != "" {
		http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "login", render.TemplateData{
		Title: "Admin Login",
		Data:  struct{ Email string }{},
	}); err != nil {
		logAndInternalError(w, "rendering login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteLogin) {
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	admin, err := h.auth.Authenticate(r.Context(), email, password)
	if err != nil {
		slog.Debug("failed login attempt", "email", email)
		flashError(w, r, h.renderer, RouteLogin, "Invalid email or password.")
		return
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), session.KeyAdminEmail, admin.Email)
	h.sessionManager.Put(r.Context(), session.KeyAdminName, admin.FullName)

	slog.Info("admin logged in", "email", admin.Email)
	http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "signup", render.TemplateData{
		Title: "Admin Signup",
		Data:  struct{ FullName, Email string }{},
	}); err != nil {
		logAndInternalError(w, "rendering signup page", "error", err)
	}
}

// Signup handles the signup form submission. Success reports a message
// on the login page without logging the new admin in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteSignup) {
		return
	}

	fullName := r.FormValue("fullName")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	if err := h.auth.Signup(r.Context(), fullName, email, password, confirm); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			flashError(w, r, h.renderer, RouteSignup, "Passwords do not match.")
		case errors.Is(err, service.ErrEmailTaken):
			flashError(w, r, h.renderer, RouteSignup, "An account with this email already exists.")
		case errors.Is(err, service.ErrSignupIncomplete):
			flashError(w, r, h.renderer, RouteSignup, "Please fill in all fields.")
		default:
			logAndInternalError(w, "signup error", "error", err)
		}
		return
	}

	slog.Info("admin account created", "email", email)
	flashSuccess(w, r, h.renderer, RouteLogin,
		fmt.Sprintf("Success! Account created for %s. You can now log in.", fullName))
}

// Logout destroys the admin session. The theme preference survives
// logout, so it is carried over into the fresh session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	email := h.sessionManager.GetString(r.Context(), session.KeyAdminEmail)
	theme := h.sessionManager.GetString(r.Context(), session.KeyTheme)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}
	if theme != "" {
		h.sessionManager.Put(r.Context(), session.KeyTheme, theme)
	}

	slog.Info("admin logged out", "email", email)
	http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
}
