// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the scs session manager backing the
// admin session markers and flash messages.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// Session keys. AdminEmail doubles as the logged-in flag: an empty
// value means no authenticated admin.
const (
	KeyAdminEmail = "admin_email"
	KeyAdminName  = "admin_name"
	KeyTheme      = "theme"
)

// Theme preference values persisted under KeyTheme.
const (
	ThemeEnabled  = "enabled"
	ThemeDisabled = "disabled"
)

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	// Use SQLite store
	sm.Store = sqlite3store.New(db)

	// Configure session
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only

	return sm
}
