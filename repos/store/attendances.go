package store

import (
	"context"

	"cloud.google.com/go/firestore"
)

// AttendanceDocID builds the deterministic document id for one user's vote on
// one event. One attendance per (user, event) pair falls out of the key.
func AttendanceDocID(userID, eventID string) string {
	return userID + "_" + eventID
}

func docToAttendance(op string, doc *firestore.DocumentSnapshot) (Attendance, error) {
	var att Attendance
	if err := doc.DataTo(&att); err != nil {
		return Attendance{}, decodeErr(op, err)
	}
	if att.ID == "" {
		att.ID = doc.Ref.ID
	}
	return att, nil
}

// ListAttendances returns every live attendance document.
func (s *Service) ListAttendances(ctx context.Context) ([]Attendance, error) {
	const op = "store.ListAttendances"
	var atts []Attendance
	iter := s.Client.Collection(ColAttendances).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		att, err := docToAttendance(op, doc)
		if err != nil {
			return err
		}
		atts = append(atts, att)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return atts, nil
}

// ListAttendancesForEvent returns the live attendances of one event.
func (s *Service) ListAttendancesForEvent(ctx context.Context, eventID string) ([]Attendance, error) {
	const op = "store.ListAttendancesForEvent"
	var atts []Attendance
	iter := s.Client.Collection(ColAttendances).Where("eventId", "==", eventID).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		att, err := docToAttendance(op, doc)
		if err != nil {
			return err
		}
		atts = append(atts, att)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return atts, nil
}

// SetAttendance upserts a vote under its deterministic id.
func (s *Service) SetAttendance(ctx context.Context, att Attendance) error {
	const op = "store.SetAttendance"
	_, err := s.Client.Collection(ColAttendances).Doc(att.ID).Set(ctx, att)
	return wrapErr(op, err)
}

// ListArchivedAttendances returns every archived attendance document.
func (s *Service) ListArchivedAttendances(ctx context.Context) ([]Attendance, error) {
	const op = "store.ListArchivedAttendances"
	var atts []Attendance
	iter := s.Client.Collection(ColAttendancesArchive).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		att, err := docToAttendance(op, doc)
		if err != nil {
			return err
		}
		atts = append(atts, att)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return atts, nil
}

// ListArchivedAttendancesForEvent returns the archived attendances of one event.
func (s *Service) ListArchivedAttendancesForEvent(ctx context.Context, eventID string) ([]Attendance, error) {
	const op = "store.ListArchivedAttendancesForEvent"
	var atts []Attendance
	iter := s.Client.Collection(ColAttendancesArchive).Where("eventId", "==", eventID).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		att, err := docToAttendance(op, doc)
		if err != nil {
			return err
		}
		atts = append(atts, att)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return atts, nil
}
