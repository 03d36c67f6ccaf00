package store

import (
	"context"

	"cloud.google.com/go/firestore"
)

func docToPlayerStats(op string, doc *firestore.DocumentSnapshot) (PlayerStats, error) {
	var stats PlayerStats
	if err := doc.DataTo(&stats); err != nil {
		return PlayerStats{}, decodeErr(op, err)
	}
	if stats.UserID == "" {
		stats.UserID = doc.Ref.ID
	}
	return stats, nil
}

// GetPlayerStats fetches one player's stats document by email key.
func (s *Service) GetPlayerStats(ctx context.Context, email string) (PlayerStats, error) {
	const op = "store.GetPlayerStats"
	doc, err := s.Client.Collection(ColStats).Doc(email).Get(ctx)
	if err != nil {
		return PlayerStats{}, wrapErr(op, err)
	}
	return docToPlayerStats(op, doc)
}

// MergePlayerStats merge-writes the given fields into a player's stats
// document, creating it if absent. Fields not named are left alone, so
// attendance writers and result writers never clobber each other's counters.
func (s *Service) MergePlayerStats(ctx context.Context, email string, fields map[string]interface{}) error {
	const op = "store.MergePlayerStats"
	_, err := s.Client.Collection(ColStats).Doc(email).Set(ctx, fields, firestore.MergeAll)
	return wrapErr(op, err)
}

// ListPlayerStats returns every stats document.
func (s *Service) ListPlayerStats(ctx context.Context) ([]PlayerStats, error) {
	const op = "store.ListPlayerStats"
	var all []PlayerStats
	iter := s.Client.Collection(ColStats).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		stats, err := docToPlayerStats(op, doc)
		if err != nil {
			return err
		}
		all = append(all, stats)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}
