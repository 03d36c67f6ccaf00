package events

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/samborkent/uuidv7"

	"github.com/furia-fc/team-sync/pkg/auth"
	"github.com/furia-fc/team-sync/pkg/timeutil"
	store "github.com/furia-fc/team-sync/repos/store"
)

// Reconciler is the slice of the archival service the read path triggers.
type Reconciler interface {
	Reconcile(ctx context.Context) error
}

// EventsService owns event CRUD and attendance voting.
type EventsService struct {
	storeService   *store.Service
	archiveService Reconciler
	validate       *validator.Validate
	logger         zerolog.Logger
	now            func() time.Time
}

func NewEventsService(storeService *store.Service, archiveService Reconciler, logger zerolog.Logger) *EventsService {
	return &EventsService{
		storeService:   storeService,
		archiveService: archiveService,
		validate:       validator.New(),
		logger:         logger,
		now:            time.Now,
	}
}

// ListUpcoming returns the events inside the active window together with
// their attendance views. An archival pass runs first, best-effort: if it
// fails the listing proceeds and the pass retries on the next load.
func (s *EventsService) ListUpcoming(ctx context.Context) ([]EventView, error) {
	if err := s.archiveService.Reconcile(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("archival pass failed, continuing with live listing")
	}

	now := s.now()
	events, err := s.storeService.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	attendances, err := s.storeService.ListAttendances(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.storeService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var views []EventView
	for _, event := range events {
		if timeutil.IsArchivable(now, event.Date) || !timeutil.InActiveWindow(now, event.Date) {
			continue
		}
		views = append(views, EventView{
			Event:       event,
			Attendances: attendanceViews(event, attendances, roster),
		})
	}
	return views, nil
}

// ListArchived returns the historical events.
func (s *EventsService) ListArchived(ctx context.Context) ([]store.Event, error) {
	return s.storeService.ListArchivedEvents(ctx)
}

// Create validates and persists a new event, expanding recurring events into
// one document per occurrence up to the recurring end date.
func (s *EventsService) Create(ctx context.Context, session auth.Session, req EventRequest) ([]store.Event, error) {
	const op = "events.Create"

	if session.IsReadOnly() {
		return nil, store.ValidationError(op, "read-only account")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, store.ValidationError(op, err.Error())
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, store.ValidationError(op, "date must be RFC 3339")
	}
	var recurringEnd time.Time
	if req.IsRecurring {
		if req.RecurringType == "" || req.RecurringEndDate == "" {
			return nil, store.ValidationError(op, "recurring events need a recurring type and end date")
		}
		recurringEnd, err = time.Parse(time.RFC3339, req.RecurringEndDate)
		if err != nil {
			return nil, store.ValidationError(op, "recurringEndDate must be RFC 3339")
		}
	}

	base := store.Event{
		ID:               uuidv7.New().String(),
		Type:             store.EventType(req.Type),
		Date:             date,
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		CreatedBy:        session.UID,
		CreatedAt:        s.now(),
		IsRecurring:      req.IsRecurring,
		RecurringType:    store.RecurringType(req.RecurringType),
		RecurringEndDate: recurringEnd,
		RivalID:          req.RivalID,
		RivalName:        req.RivalName,
	}

	created := expandRecurring(base)
	for _, event := range created {
		if err := s.storeService.CreateEvent(ctx, event); err != nil {
			return nil, err
		}
	}
	return created, nil
}

// Vote records one user's attendance on a live event. The document id is the
// (user, event) concatenation so a revote overwrites rather than duplicates.
func (s *EventsService) Vote(ctx context.Context, session auth.Session, eventID string, req VoteRequest) (store.Attendance, error) {
	const op = "events.Vote"

	if session.IsReadOnly() {
		return store.Attendance{}, store.ValidationError(op, "read-only account")
	}
	if err := s.validate.Struct(req); err != nil {
		return store.Attendance{}, store.ValidationError(op, err.Error())
	}

	// Voting on an archived event is impossible: the lookup only sees the
	// live collection.
	if _, err := s.storeService.GetEvent(ctx, eventID); err != nil {
		return store.Attendance{}, err
	}

	now := s.now()
	status := store.AttendanceStatus(req.Status)
	att := store.Attendance{
		ID:              store.AttendanceDocID(session.Email, eventID),
		EventID:         eventID,
		UserID:          session.Email,
		UserDisplayName: session.DisplayName,
		Attending:       status == store.StatusAttending,
		Status:          status,
		Comment:         req.Comment,
		WithCar:         req.WithCar,
		CanGiveRide:     req.CanGiveRide,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.storeService.SetAttendance(ctx, att); err != nil {
		return store.Attendance{}, err
	}
	return att, nil
}

// Update applies partial edits to a live event. Archived events are not
// editable here; only the match result editor touches those.
func (s *EventsService) Update(ctx context.Context, session auth.Session, eventID string, req EventUpdateRequest) error {
	const op = "events.Update"

	if session.IsReadOnly() {
		return store.ValidationError(op, "read-only account")
	}
	updates, err := eventUpdates(req)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	return s.storeService.UpdateEvent(ctx, eventID, updates)
}

// eventUpdates builds the update list from the fields actually present.
func eventUpdates(req EventUpdateRequest) ([]firestore.Update, error) {
	const op = "events.eventUpdates"
	var updates []firestore.Update

	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *req.Description})
	}
	if req.Location != nil {
		updates = append(updates, firestore.Update{Path: "location", Value: *req.Location})
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, store.ValidationError(op, "date must be RFC 3339")
		}
		updates = append(updates, firestore.Update{Path: "date", Value: date})
	}
	if req.RivalID != nil {
		updates = append(updates, firestore.Update{Path: "rivalId", Value: *req.RivalID})
	}
	if req.RivalName != nil {
		updates = append(updates, firestore.Update{Path: "rivalName", Value: *req.RivalName})
	}
	return updates, nil
}

// Suspend flags an event as suspended without deleting it.
func (s *EventsService) Suspend(ctx context.Context, session auth.Session, eventID string, suspended bool) error {
	updates := []firestore.Update{
		{Path: "suspended", Value: suspended},
	}
	if suspended {
		updates = append(updates,
			firestore.Update{Path: "suspendedBy", Value: session.UID},
			firestore.Update{Path: "suspendedAt", Value: s.now()},
		)
	}
	return s.storeService.UpdateEvent(ctx, eventID, updates)
}

// Delete removes a live event.
func (s *EventsService) Delete(ctx context.Context, eventID string) error {
	return s.storeService.DeleteEvent(ctx, eventID)
}

// expandRecurring turns a recurring event into one document per occurrence.
// Clones carry originalEventId pointing at the first occurrence.
func expandRecurring(base store.Event) []store.Event {
	events := []store.Event{base}
	if !base.IsRecurring {
		return events
	}

	step := func(t time.Time) time.Time {
		if base.RecurringType == store.RecurringMonthly {
			return t.AddDate(0, 1, 0)
		}
		return t.AddDate(0, 0, 7)
	}

	for next := step(base.Date); !next.After(base.RecurringEndDate); next = step(next) {
		clone := base
		clone.ID = uuidv7.New().String()
		clone.Date = next
		clone.OriginalEventID = base.ID
		events = append(events, clone)
	}
	return events
}

// attendanceViews returns the event's votes plus a synthetic not-voted row
// for every roster member without one. The synthetic rows are never
// persisted, and read-only accounts don't appear at all.
func attendanceViews(event store.Event, attendances []store.Attendance, roster []store.User) []store.Attendance {
	var views []store.Attendance
	voted := map[string]bool{}
	for _, att := range attendances {
		if att.EventID != event.ID {
			continue
		}
		views = append(views, att)
		voted[att.UserID] = true
	}

	for _, user := range roster {
		if user.Role == store.RoleViewer || voted[user.Email] {
			continue
		}
		views = append(views, store.Attendance{
			ID:              store.AttendanceDocID(user.Email, event.ID),
			EventID:         event.ID,
			UserID:          user.Email,
			UserDisplayName: user.DisplayName,
			Status:          store.StatusNotVoted,
		})
	}
	return views
}
