package store

import (
	"context"

	"cloud.google.com/go/firestore"
)

func docToEvent(op string, doc *firestore.DocumentSnapshot) (Event, error) {
	var event Event
	if err := doc.DataTo(&event); err != nil {
		return Event{}, decodeErr(op, err)
	}
	if event.ID == "" {
		event.ID = doc.Ref.ID
	}
	return event, nil
}

// ListEvents returns every document in the live events collection.
func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	const op = "store.ListEvents"
	var events []Event
	iter := s.Client.Collection(ColEvents).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		event, err := docToEvent(op, doc)
		if err != nil {
			return err
		}
		events = append(events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches one live event by id.
func (s *Service) GetEvent(ctx context.Context, id string) (Event, error) {
	const op = "store.GetEvent"
	doc, err := s.Client.Collection(ColEvents).Doc(id).Get(ctx)
	if err != nil {
		return Event{}, wrapErr(op, err)
	}
	return docToEvent(op, doc)
}

// CreateEvent writes a new live event under its own id.
func (s *Service) CreateEvent(ctx context.Context, event Event) error {
	const op = "store.CreateEvent"
	_, err := s.Client.Collection(ColEvents).Doc(event.ID).Set(ctx, event)
	return wrapErr(op, err)
}

// UpdateEvent applies partial updates to a live event.
func (s *Service) UpdateEvent(ctx context.Context, id string, updates []firestore.Update) error {
	const op = "store.UpdateEvent"
	_, err := s.Client.Collection(ColEvents).Doc(id).Update(ctx, updates)
	return wrapErr(op, err)
}

// DeleteEvent removes a live event.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	const op = "store.DeleteEvent"
	_, err := s.Client.Collection(ColEvents).Doc(id).Delete(ctx)
	return wrapErr(op, err)
}

// ListArchivedEvents returns every archived event.
func (s *Service) ListArchivedEvents(ctx context.Context) ([]Event, error) {
	const op = "store.ListArchivedEvents"
	var events []Event
	iter := s.Client.Collection(ColEventsArchive).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		event, err := docToEvent(op, doc)
		if err != nil {
			return err
		}
		events = append(events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetArchivedEvent fetches one archived event by id.
func (s *Service) GetArchivedEvent(ctx context.Context, id string) (Event, error) {
	const op = "store.GetArchivedEvent"
	doc, err := s.Client.Collection(ColEventsArchive).Doc(id).Get(ctx)
	if err != nil {
		return Event{}, wrapErr(op, err)
	}
	return docToEvent(op, doc)
}

// UpdateArchivedEvent applies partial updates to an archived event. Archived
// events are immutable except for the result-linked fields the match result
// editor mirrors back.
func (s *Service) UpdateArchivedEvent(ctx context.Context, id string, updates []firestore.Update) error {
	const op = "store.UpdateArchivedEvent"
	_, err := s.Client.Collection(ColEventsArchive).Doc(id).Update(ctx, updates)
	return wrapErr(op, err)
}
