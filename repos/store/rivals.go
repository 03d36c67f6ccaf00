package store

import (
	"context"

	"cloud.google.com/go/firestore"
)

// ListRivals returns the full rival roster.
func (s *Service) ListRivals(ctx context.Context) ([]Rival, error) {
	const op = "store.ListRivals"
	var rivals []Rival
	iter := s.Client.Collection(ColRivals).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		var rival Rival
		if err := doc.DataTo(&rival); err != nil {
			return decodeErr(op, err)
		}
		if rival.ID == "" {
			rival.ID = doc.Ref.ID
		}
		rivals = append(rivals, rival)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rivals, nil
}

// GetRival fetches one rival by id.
func (s *Service) GetRival(ctx context.Context, id string) (Rival, error) {
	const op = "store.GetRival"
	doc, err := s.Client.Collection(ColRivals).Doc(id).Get(ctx)
	if err != nil {
		return Rival{}, wrapErr(op, err)
	}
	var rival Rival
	if err := doc.DataTo(&rival); err != nil {
		return Rival{}, decodeErr(op, err)
	}
	return rival, nil
}

// SetRival upserts a rival.
func (s *Service) SetRival(ctx context.Context, rival Rival) error {
	const op = "store.SetRival"
	_, err := s.Client.Collection(ColRivals).Doc(rival.ID).Set(ctx, rival)
	return wrapErr(op, err)
}

// DeleteRival removes a rival.
func (s *Service) DeleteRival(ctx context.Context, id string) error {
	const op = "store.DeleteRival"
	_, err := s.Client.Collection(ColRivals).Doc(id).Delete(ctx)
	return wrapErr(op, err)
}

// ListFixtures returns every scheduled fixture.
func (s *Service) ListFixtures(ctx context.Context) ([]Fixture, error) {
	const op = "store.ListFixtures"
	var fixtures []Fixture
	iter := s.Client.Collection(ColFixtures).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		var fixture Fixture
		if err := doc.DataTo(&fixture); err != nil {
			return decodeErr(op, err)
		}
		if fixture.ID == "" {
			fixture.ID = doc.Ref.ID
		}
		fixtures = append(fixtures, fixture)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fixtures, nil
}

// GetFixture fetches one fixture by id.
func (s *Service) GetFixture(ctx context.Context, id string) (Fixture, error) {
	const op = "store.GetFixture"
	doc, err := s.Client.Collection(ColFixtures).Doc(id).Get(ctx)
	if err != nil {
		return Fixture{}, wrapErr(op, err)
	}
	var fixture Fixture
	if err := doc.DataTo(&fixture); err != nil {
		return Fixture{}, decodeErr(op, err)
	}
	return fixture, nil
}

// SetFixture upserts a fixture.
func (s *Service) SetFixture(ctx context.Context, fixture Fixture) error {
	const op = "store.SetFixture"
	_, err := s.Client.Collection(ColFixtures).Doc(fixture.ID).Set(ctx, fixture)
	return wrapErr(op, err)
}

// UpdateFixture applies partial updates to a fixture.
func (s *Service) UpdateFixture(ctx context.Context, id string, updates []firestore.Update) error {
	const op = "store.UpdateFixture"
	_, err := s.Client.Collection(ColFixtures).Doc(id).Update(ctx, updates)
	return wrapErr(op, err)
}

// DeleteFixture removes a fixture.
func (s *Service) DeleteFixture(ctx context.Context, id string) error {
	const op = "store.DeleteFixture"
	_, err := s.Client.Collection(ColFixtures).Doc(id).Delete(ctx)
	return wrapErr(op, err)
}
