package store

import (
	"context"

	"cloud.google.com/go/firestore"
)

func docToMatchResult(op string, doc *firestore.DocumentSnapshot) (MatchResult, error) {
	var result MatchResult
	if err := doc.DataTo(&result); err != nil {
		return MatchResult{}, decodeErr(op, err)
	}
	return result, nil
}

// GetMatchResult fetches the result for one event, keyed by event id.
func (s *Service) GetMatchResult(ctx context.Context, eventID string) (MatchResult, error) {
	const op = "store.GetMatchResult"
	doc, err := s.Client.Collection(ColMatchResults).Doc(eventID).Get(ctx)
	if err != nil {
		return MatchResult{}, wrapErr(op, err)
	}
	return docToMatchResult(op, doc)
}

// SetMatchResult upserts the result document for one event.
func (s *Service) SetMatchResult(ctx context.Context, eventID string, result MatchResult) error {
	const op = "store.SetMatchResult"
	_, err := s.Client.Collection(ColMatchResults).Doc(eventID).Set(ctx, result)
	return wrapErr(op, err)
}

// ListMatchResults returns every result keyed by its event id.
func (s *Service) ListMatchResults(ctx context.Context) (map[string]MatchResult, error) {
	const op = "store.ListMatchResults"
	results := make(map[string]MatchResult)
	iter := s.Client.Collection(ColMatchResults).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		result, err := docToMatchResult(op, doc)
		if err != nil {
			return err
		}
		results[doc.Ref.ID] = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
