package session

import (
	"net/http"
	"testing"

	"github.com/olegiv/eventhub-go/internal/testutil"
)

func TestNewDevelopment(t *testing.T) {
	sm := New(testutil.TestDB(t), true)

	if sm.Cookie.Secure {
		t.Error("cookie should not be Secure in development")
	}
	if !sm.Cookie.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}
	if sm.Cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", sm.Cookie.SameSite)
	}
}

func TestNewProduction(t *testing.T) {
	sm := New(testutil.TestDB(t), false)

	if !sm.Cookie.Secure {
		t.Error("cookie should be Secure in production")
	}
}
