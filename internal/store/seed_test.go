package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/olegiv/eventhub-go/internal/model"
)

func TestSeedEmptyStorage(t *testing.T) {
	s := New(testDB(t))
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	admins := s.Admins(ctx)
	if len(admins) != 1 {
		t.Fatalf("admins after seed = %d, want 1", len(admins))
	}
	if admins[0].Email != DefaultAdminEmail {
		t.Errorf("admin email = %q, want %q", admins[0].Email, DefaultAdminEmail)
	}
	if admins[0].Password != DefaultAdminPassword {
		t.Errorf("admin password = %q, want %q", admins[0].Password, DefaultAdminPassword)
	}

	events := s.Events(ctx)
	if len(events) != 13 {
		t.Fatalf("events after seed = %d, want 13", len(events))
	}
	if events[0].ID != "web-dev" || events[12].ID != "evt_10" {
		t.Errorf("seed order wrong: first=%q last=%q", events[0].ID, events[12].ID)
	}
	for _, ev := range events {
		if ev.AdminEmail != DefaultAdminEmail {
			t.Errorf("event %s owner = %q, want %q", ev.ID, ev.AdminEmail, DefaultAdminEmail)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := New(testDB(t))
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	admins := s.Admins(ctx)
	events := s.Events(ctx)

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	if got := s.Admins(ctx); !reflect.DeepEqual(got, admins) {
		t.Errorf("admins changed by second seed:\n got %+v\nwant %+v", got, admins)
	}
	if got := s.Events(ctx); !reflect.DeepEqual(got, events) {
		t.Errorf("events changed by second seed:\n got %+v\nwant %+v", got, events)
	}
}

func TestSeedDoesNotMergeIntoExistingEvents(t *testing.T) {
	s := New(testDB(t))
	ctx := context.Background()

	existing := []model.Event{{ID: "evt_custom", Title: "Mine", AdminEmail: "me@x.com"}}
	if err := s.WriteEvents(ctx, existing); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if got := s.Events(ctx); !reflect.DeepEqual(got, existing) {
		t.Errorf("seed merged into non-empty events collection: %+v", got)
	}
}

func TestSeedKeepsExistingAdmins(t *testing.T) {
	s := New(testDB(t))
	ctx := context.Background()

	other := model.Admin{Email: "other@x.com", Password: "pw", FullName: "Other"}
	if err := s.WriteAdmins(ctx, []model.Admin{other}); err != nil {
		t.Fatalf("WriteAdmins: %v", err)
	}

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	// Default admin is appended; the existing record stays first.
	admins := s.Admins(ctx)
	if len(admins) != 2 {
		t.Fatalf("admins = %d, want 2", len(admins))
	}
	if admins[0] != other {
		t.Errorf("existing admin displaced: %+v", admins[0])
	}
	if admins[1].Email != DefaultAdminEmail {
		t.Errorf("appended admin = %q, want %q", admins[1].Email, DefaultAdminEmail)
	}
}
