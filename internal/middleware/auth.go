// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication and
// request handling.
package middleware

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/eventhub-go/internal/model"
	"github.com/olegiv/eventhub-go/internal/session"
	"github.com/olegiv/eventhub-go/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAdmin holds the authenticated model.Admin.
const ContextKeyAdmin ContextKey = "admin"

// Auth creates middleware that requires an authenticated admin
// session. It is the page guard: unauthenticated requests are flashed
// a notice and redirected to the login page before any content is
// rendered.
func Auth(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := sm.GetString(r.Context(), session.KeyAdminEmail)
			if email == "" {
				sm.Put(r.Context(), "flash", "You must be logged in to view this page.")
				sm.Put(r.Context(), "flash_type", "error")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadAdmin creates middleware that loads the current admin record
// into the request context. Use after Auth. If the session points at
// an admin that no longer exists, the session is destroyed and the
// request redirected to login.
func LoadAdmin(sm *scs.SessionManager, s *store.Storage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := sm.GetString(r.Context(), session.KeyAdminEmail)
			if email == "" {
				next.ServeHTTP(w, r)
				return
			}

			var found *model.Admin
			for _, admin := range s.Admins(r.Context()) {
				if admin.Email == email {
					found = &admin
					break
				}
			}
			if found == nil {
				_ = sm.Destroy(r.Context())
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, *found)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the admin loaded by LoadAdmin, if any.
func AdminFromContext(ctx context.Context) (model.Admin, bool) {
	admin, ok := ctx.Value(ContextKeyAdmin).(model.Admin)
	return admin, ok
}
