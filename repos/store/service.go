package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Service wraps the Firestore client behind typed per-collection operations.
// Every error it returns carries a Kind (see errors.go).
type Service struct {
	Client *firestore.Client
}

// NewService creates a new store service.
func NewService(client *firestore.Client) *Service {
	return &Service{
		Client: client,
	}
}

// getAll drains a document iterator, decoding each snapshot with decode.
// A snapshot that fails to decode aborts the whole read.
func getAll(ctx context.Context, op string, iter *firestore.DocumentIterator, decode func(*firestore.DocumentSnapshot) error) error {
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return wrapErr(op, err)
		}
		if err := decode(doc); err != nil {
			return err
		}
	}
}
