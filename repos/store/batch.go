package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
)

// ArchiveEvents migrates the given events and their attendances from the live
// collections to their archive twins in one atomic commit: archive copies are
// written with archivedAt stamped and the originals deleted together, so a
// document is never visible in both places and never lost in neither.
func (s *Service) ArchiveEvents(ctx context.Context, events []Event, attendances []Attendance, archivedAt time.Time) error {
	const op = "store.ArchiveEvents"
	if len(events) == 0 {
		return nil
	}
	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, event := range events {
			event.ArchivedAt = archivedAt
			if err := tx.Set(s.Client.Collection(ColEventsArchive).Doc(event.ID), event); err != nil {
				return err
			}
			if err := tx.Delete(s.Client.Collection(ColEvents).Doc(event.ID)); err != nil {
				return err
			}
		}
		for _, att := range attendances {
			att.ArchivedAt = archivedAt
			if err := tx.Set(s.Client.Collection(ColAttendancesArchive).Doc(att.ID), att); err != nil {
				return err
			}
			if err := tx.Delete(s.Client.Collection(ColAttendances).Doc(att.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr(op, err)
}

// DeleteArchivedMatch removes an archived event, its archived attendances and
// its match result in one atomic commit. Stats contributions are not
// reversed here; reprocessing is the repair path.
func (s *Service) DeleteArchivedMatch(ctx context.Context, eventID string, attendanceIDs []string) error {
	const op = "store.DeleteArchivedMatch"
	err := s.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Delete(s.Client.Collection(ColEventsArchive).Doc(eventID)); err != nil {
			return err
		}
		for _, id := range attendanceIDs {
			if err := tx.Delete(s.Client.Collection(ColAttendancesArchive).Doc(id)); err != nil {
				return err
			}
		}
		return tx.Delete(s.Client.Collection(ColMatchResults).Doc(eventID))
	})
	return wrapErr(op, err)
}
