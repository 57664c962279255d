// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/eventhub-go/internal/render"
	"github.com/olegiv/eventhub-go/internal/session"
	"github.com/olegiv/eventhub-go/internal/store"
	"github.com/olegiv/eventhub-go/internal/testutil"
	"github.com/olegiv/eventhub-go/web"
)

// testEnv bundles the pieces handlers need under test: a seeded
// storage, a session manager and a renderer over the real templates.
type testEnv struct {
	storage *store.Storage
	sm      *scs.SessionManager
	rend    *render.Renderer
}

// newTestEnv creates a test environment backed by a temporary database
// with the default seed data applied.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.TestDB(t)
	storage := store.New(db)
	if err := storage.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	sm := session.New(db, true)

	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates sub fs: %v", err)
	}
	rend, err := render.New(render.Config{
		TemplatesFS:    templates,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	return &testEnv{storage: storage, sm: sm, rend: rend}
}

// do runs a request through the session middleware and the given
// handler, carrying cookies from a previous response if provided.
func (e *testEnv) do(t *testing.T, h http.HandlerFunc, req *http.Request, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()

	if prev != nil {
		for _, c := range prev.Result().Cookies() {
			req.AddCookie(c)
		}
	}

	rec := httptest.NewRecorder()
	e.sm.LoadAndSave(h).ServeHTTP(rec, req)
	return rec
}

// login authenticates the default admin and returns the response whose
// session cookie marks the logged-in state.
func (e *testEnv) login(t *testing.T, auth *AuthHandler) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, RouteLogin, nil)
	req.Form = map[string][]string{
		"email":    {store.DefaultAdminEmail},
		"password": {store.DefaultAdminPassword},
	}
	rec := e.do(t, auth.Login, req, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want 303", rec.Code)
	}
	return rec
}
