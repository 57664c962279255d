package render

import (
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func testTemplatesFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(
			`{{define "base"}}<html><body>{{template "flash" .}}{{template "content" .}}</body></html>{{end}}`,
		)},
		"partials/flash.html": &fstest.MapFile{Data: []byte(
			`{{define "flash"}}{{if .Flash}}<div class="{{.FlashType}}">{{.Flash}}</div>{{end}}{{end}}`,
		)},
		"pages/home.html": &fstest.MapFile{Data: []byte(
			`{{define "content"}}<h1>{{.Title}}</h1><p>{{.Data}}</p>{{end}}`,
		)},
	}
}

func TestRenderPage(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	err = r.Render(rec, req, "home", TemplateData{Title: "EventHub", Data: "hello"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<h1>EventHub</h1>") {
		t.Errorf("body missing title: %s", body)
	}
	if !strings.Contains(body, "<p>hello</p>") {
		t.Errorf("body missing data: %s", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New(Config{TemplatesFS: testTemplatesFS()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	if err := r.Render(rec, req, "missing", TemplateData{}); err == nil {
		t.Error("expected error for unknown template")
	}
	if rec.Body.Len() != 0 {
		t.Error("nothing should be written on render error")
	}
}

func TestTemplateFuncs(t *testing.T) {
	r := &Renderer{}
	funcs := r.templateFuncs()

	formatDate := funcs["formatDate"].(func(string) string)
	if got := formatDate("2025-06-15"); got != "Jun 15, 2025" {
		t.Errorf("formatDate = %q, want %q", got, "Jun 15, 2025")
	}
	if got := formatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("formatDate on bad input = %q, want pass-through", got)
	}

	formatTimestamp := funcs["formatTimestamp"].(func(string) string)
	if got := formatTimestamp("2025-06-15T14:30:00Z"); got != "Jun 15, 2025 2:30 PM" {
		t.Errorf("formatTimestamp = %q, want %q", got, "Jun 15, 2025 2:30 PM")
	}

	truncate := funcs["truncate"].(func(string, int) string)
	if got := truncate("hello world", 5); got != "hello..." {
		t.Errorf("truncate = %q, want %q", got, "hello...")
	}
	if got := truncate("hi", 5); got != "hi" {
		t.Errorf("truncate short string = %q, want %q", got, "hi")
	}
}
