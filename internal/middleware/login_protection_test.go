package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginProtectionAllowsBurstThenThrottles(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{RateLimit: 0.001, Burst: 3})

	for i := 0; i < 3; i++ {
		if !lp.Allow("10.0.0.1") {
			t.Fatalf("attempt %d within burst should be allowed", i+1)
		}
	}
	if lp.Allow("10.0.0.1") {
		t.Error("attempt beyond burst should be throttled")
	}

	// Other IPs are unaffected.
	if !lp.Allow("10.0.0.2") {
		t.Error("different IP should have its own limiter")
	}
}

func TestLoginProtectionMiddlewareReturns429(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{RateLimit: 0.001, Burst: 1})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := lp.Middleware()(next)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.3:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first attempt status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second attempt status = %d, want 429", rec.Code)
	}
}

func TestStripTrailingSlash(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := StripTrailingSlash(next)

	tests := []struct {
		path     string
		wantCode int
		wantLoc  string
	}{
		{"/explore/", http.StatusMovedPermanently, "/explore"},
		{"/explore", http.StatusOK, ""},
		{"/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.wantCode {
			t.Errorf("%s: status = %d, want %d", tt.path, rec.Code, tt.wantCode)
		}
		if tt.wantLoc != "" && rec.Header().Get("Location") != tt.wantLoc {
			t.Errorf("%s: Location = %q, want %q", tt.path, rec.Header().Get("Location"), tt.wantLoc)
		}
	}
}
