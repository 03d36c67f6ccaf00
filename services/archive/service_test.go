package archive

import (
	"testing"
	"time"

	store "github.com/furia-fc/team-sync/repos/store"
)

func TestArchivableEvents(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

	events := []store.Event{
		{ID: "old-training", Type: store.EventTraining, Date: now.Add(-3 * time.Hour)},
		{ID: "boundary", Type: store.EventMatch, Date: now.Add(-time.Hour)},
		{ID: "upcoming", Type: store.EventMatch, Date: now.Add(2 * time.Hour)},
		{ID: "far-out", Type: store.EventCustom, Date: now.Add(20 * 24 * time.Hour)},
	}

	archivable := archivableEvents(events, now)

	if len(archivable) != 1 || archivable[0].ID != "old-training" {
		t.Fatalf("expected only the ended event to be archivable, got %+v", archivable)
	}
}

func TestPartitionAttendances(t *testing.T) {
	archivable := []store.Event{
		{ID: "ev-training", Type: store.EventTraining},
		{ID: "ev-match", Type: store.EventMatch},
		{ID: "ev-birthday", Type: store.EventBirthday},
	}
	attendances := []store.Attendance{
		{ID: "u1_ev-training", EventID: "ev-training", UserID: "u1@f.fc", UserDisplayName: "Uno", Status: store.StatusAttending},
		{ID: "u1_ev-match", EventID: "ev-match", UserID: "u1@f.fc", Status: store.StatusNotAttending},
		{ID: "u2_ev-match", EventID: "ev-match", UserID: "u2@f.fc", Status: store.StatusAttending},
		{ID: "u1_ev-birthday", EventID: "ev-birthday", UserID: "u1@f.fc", Status: store.StatusAttending},
		{ID: "u2_ev-live", EventID: "ev-live", UserID: "u2@f.fc", Status: store.StatusAttending},
	}

	archived, perUser := partitionAttendances(archivable, attendances)

	// The vote on the still-live event stays put.
	if len(archived) != 4 {
		t.Fatalf("expected 4 attendances to migrate, got %d", len(archived))
	}
	for _, att := range archived {
		if att.EventID == "ev-live" {
			t.Fatal("live-event attendance must not be partitioned for archival")
		}
	}

	u1 := perUser["u1@f.fc"]
	if u1 == nil || len(u1.entries) != 3 {
		t.Fatalf("expected 3 entries for u1, got %+v", u1)
	}
	if u1.displayName != "Uno" {
		t.Errorf("expected display name carried over, got %q", u1.displayName)
	}
	for _, entry := range u1.entries {
		switch entry.EventID {
		case "ev-training":
			if !entry.Attended || entry.EventType != store.EventTraining {
				t.Errorf("bad entry for ev-training: %+v", entry)
			}
		case "ev-match":
			if entry.Attended {
				t.Errorf("u1 did not attend the match: %+v", entry)
			}
		case "ev-birthday":
			if entry.EventType.CountsForStats() {
				t.Errorf("birthday events must not count for stats")
			}
		}
	}

	u2 := perUser["u2@f.fc"]
	if u2 == nil || len(u2.entries) != 1 || u2.entries[0].EventID != "ev-match" {
		t.Fatalf("expected only the archived match entry for u2, got %+v", u2)
	}
}

func TestPartitionAttendancesLegacyBool(t *testing.T) {
	archivable := []store.Event{{ID: "ev", Type: store.EventTraining}}
	attendances := []store.Attendance{
		// Old documents have only the bool.
		{ID: "u1_ev", EventID: "ev", UserID: "u1@f.fc", Attending: true},
	}

	_, perUser := partitionAttendances(archivable, attendances)
	if !perUser["u1@f.fc"].entries[0].Attended {
		t.Error("legacy attending bool should be honored when status is absent")
	}
}
