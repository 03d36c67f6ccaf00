package store

import (
	"context"

	"cloud.google.com/go/firestore"
)

// GetUser fetches one user document, keyed by auth uid.
func (s *Service) GetUser(ctx context.Context, uid string) (User, error) {
	const op = "store.GetUser"
	doc, err := s.Client.Collection(ColUsers).Doc(uid).Get(ctx)
	if err != nil {
		return User{}, wrapErr(op, err)
	}
	var user User
	if err := doc.DataTo(&user); err != nil {
		return User{}, decodeErr(op, err)
	}
	if user.ID == "" {
		user.ID = doc.Ref.ID
	}
	return user, nil
}

// SetUser upserts a user document.
func (s *Service) SetUser(ctx context.Context, user User) error {
	const op = "store.SetUser"
	_, err := s.Client.Collection(ColUsers).Doc(user.ID).Set(ctx, user)
	return wrapErr(op, err)
}

// ListUsers returns the team roster.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	const op = "store.ListUsers"
	var users []User
	iter := s.Client.Collection(ColUsers).Documents(ctx)
	err := getAll(ctx, op, iter, func(doc *firestore.DocumentSnapshot) error {
		var user User
		if err := doc.DataTo(&user); err != nil {
			return decodeErr(op, err)
		}
		if user.ID == "" {
			user.ID = doc.Ref.ID
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
