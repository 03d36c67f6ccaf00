package archive

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/furia-fc/team-sync/pkg/timeutil"
	store "github.com/furia-fc/team-sync/repos/store"
	stats "github.com/furia-fc/team-sync/services/stats"
)

// StatsWriter is the slice of the stats service archival feeds.
type StatsWriter interface {
	ApplyAttendance(ctx context.Context, userID, displayName string, entries []stats.AttendanceEntry) error
}

// ArchiveService migrates ended events and their attendances into the archive
// collections and feeds the attendance counters on the way out.
type ArchiveService struct {
	storeService *store.Service
	statsService StatsWriter
	logger       zerolog.Logger
	now          func() time.Time
}

func NewArchiveService(storeService *store.Service, statsService StatsWriter, logger zerolog.Logger) *ArchiveService {
	return &ArchiveService{
		storeService: storeService,
		statsService: statsService,
		logger:       logger,
		now:          time.Now,
	}
}

// Reconcile performs one archival pass: find every event past its relevance
// window, count its attendances into player stats, then move event and
// attendances to the archive twins in one atomic commit.
//
// The stats writes land before the migration commit and are not rolled back
// if the commit fails, so a crash in between can count an event's attendance
// without archiving it — at-least-once, accepted. A pass that completes makes
// the next pass a no-op for those events, because they are no longer in the
// live collection to be found.
func (s *ArchiveService) Reconcile(ctx context.Context) error {
	now := s.now()

	events, err := s.storeService.ListEvents(ctx)
	if err != nil {
		return err
	}

	archivable := archivableEvents(events, now)
	if len(archivable) == 0 {
		return nil
	}

	attendances, err := s.storeService.ListAttendances(ctx)
	if err != nil {
		return err
	}

	archivableAtts, perUser := partitionAttendances(archivable, attendances)

	for userID, grouped := range perUser {
		if err := s.statsService.ApplyAttendance(ctx, userID, grouped.displayName, grouped.entries); err != nil {
			return err
		}
	}

	if err := s.storeService.ArchiveEvents(ctx, archivable, archivableAtts, now); err != nil {
		return err
	}

	s.logger.Info().
		Int("events", len(archivable)).
		Int("attendances", len(archivableAtts)).
		Msg("archived ended events")
	return nil
}

// Run invokes Reconcile on a fixed interval until the context is cancelled.
// Errors are logged and the ticker keeps going; a failed pass simply retries
// on the next tick.
func (s *ArchiveService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Reconcile(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled archival pass failed")
			}
		}
	}
}

// archivableEvents filters the events whose relevance window has passed.
func archivableEvents(events []store.Event, now time.Time) []store.Event {
	var out []store.Event
	for _, event := range events {
		if timeutil.IsArchivable(now, event.Date) {
			out = append(out, event)
		}
	}
	return out
}

type userGroup struct {
	displayName string
	entries     []stats.AttendanceEntry
}

// partitionAttendances splits out the attendances belonging to archivable
// events and groups them per user with each event's type attached, ready for
// the incremental stats update.
func partitionAttendances(archivable []store.Event, attendances []store.Attendance) ([]store.Attendance, map[string]*userGroup) {
	eventTypes := map[string]store.EventType{}
	for _, event := range archivable {
		eventTypes[event.ID] = event.Type
	}

	var archived []store.Attendance
	perUser := map[string]*userGroup{}
	for _, att := range attendances {
		eventType, ok := eventTypes[att.EventID]
		if !ok {
			continue
		}
		archived = append(archived, att)

		grouped, ok := perUser[att.UserID]
		if !ok {
			grouped = &userGroup{}
			perUser[att.UserID] = grouped
		}
		if att.UserDisplayName != "" {
			grouped.displayName = att.UserDisplayName
		}
		grouped.entries = append(grouped.entries, stats.AttendanceEntry{
			EventID:   att.EventID,
			Attended:  att.IsAttending(),
			EventType: eventType,
		})
	}
	return archived, perUser
}
