package events

import (
	"testing"
	"time"

	"github.com/xorcare/pointer"

	store "github.com/furia-fc/team-sync/repos/store"
)

func TestEventUpdatesOnlyPresentFields(t *testing.T) {
	updates, err := eventUpdates(EventUpdateRequest{
		Title:    pointer.String("Clasico"),
		Location: pointer.String("Cancha 2"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %+v", updates)
	}
	if updates[0].Path != "title" || updates[0].Value != "Clasico" {
		t.Errorf("unexpected first update: %+v", updates[0])
	}

	updates, err = eventUpdates(EventUpdateRequest{})
	if err != nil || len(updates) != 0 {
		t.Errorf("empty request should produce no updates, got %+v (%v)", updates, err)
	}

	if _, err := eventUpdates(EventUpdateRequest{Date: pointer.String("not-a-date")}); err == nil {
		t.Error("bad date must be rejected")
	}
}

func TestExpandRecurringWeekly(t *testing.T) {
	start := time.Date(2026, 4, 1, 19, 0, 0, 0, time.UTC)
	base := store.Event{
		ID:               "first",
		Type:             store.EventTraining,
		Date:             start,
		IsRecurring:      true,
		RecurringType:    store.RecurringWeekly,
		RecurringEndDate: start.AddDate(0, 0, 21),
	}

	events := expandRecurring(base)

	if len(events) != 4 {
		t.Fatalf("expected 4 weekly occurrences, got %d", len(events))
	}
	if events[0].OriginalEventID != "" {
		t.Error("first occurrence must not point at itself")
	}
	for i, event := range events[1:] {
		if event.OriginalEventID != "first" {
			t.Errorf("clone %d should link back to the first occurrence", i+1)
		}
		if event.ID == "first" {
			t.Errorf("clone %d must get a fresh id", i+1)
		}
		want := start.AddDate(0, 0, 7*(i+1))
		if !event.Date.Equal(want) {
			t.Errorf("clone %d date = %v, want %v", i+1, event.Date, want)
		}
	}
}

func TestExpandRecurringMonthly(t *testing.T) {
	start := time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC)
	base := store.Event{
		ID:               "first",
		Date:             start,
		IsRecurring:      true,
		RecurringType:    store.RecurringMonthly,
		RecurringEndDate: start.AddDate(0, 2, 0),
	}

	events := expandRecurring(base)
	if len(events) != 3 {
		t.Fatalf("expected 3 monthly occurrences, got %d", len(events))
	}
}

func TestExpandRecurringNotRecurring(t *testing.T) {
	base := store.Event{ID: "only", Date: time.Now()}
	events := expandRecurring(base)
	if len(events) != 1 || events[0].ID != "only" {
		t.Fatalf("non-recurring event should expand to itself, got %+v", events)
	}
}

func TestAttendanceViewsSynthesizesNotVoted(t *testing.T) {
	event := store.Event{ID: "ev1"}
	attendances := []store.Attendance{
		{ID: "a@f.fc_ev1", EventID: "ev1", UserID: "a@f.fc", Status: store.StatusAttending},
		{ID: "a@f.fc_ev2", EventID: "ev2", UserID: "a@f.fc", Status: store.StatusAttending},
	}
	roster := []store.User{
		{ID: "u-a", Email: "a@f.fc", DisplayName: "A", Role: store.RolePlayer},
		{ID: "u-b", Email: "b@f.fc", DisplayName: "B", Role: store.RolePlayer},
		{ID: "u-demo", Email: "demo@f.fc", DisplayName: "Demo", Role: store.RoleViewer},
	}

	views := attendanceViews(event, attendances, roster)

	if len(views) != 2 {
		t.Fatalf("expected voter plus one synthetic row, got %+v", views)
	}
	if views[0].UserID != "a@f.fc" || views[0].Status != store.StatusAttending {
		t.Errorf("unexpected voted row: %+v", views[0])
	}
	if views[1].UserID != "b@f.fc" || views[1].Status != store.StatusNotVoted {
		t.Errorf("expected synthetic not-voted row for b, got %+v", views[1])
	}
	for _, view := range views {
		if view.UserID == "demo@f.fc" {
			t.Error("viewer accounts must not appear in attendance views")
		}
	}
}
