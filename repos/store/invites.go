package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
)

const ColInvites = "invites"

// Invite is a pending offer to join the roster, keyed by invited email.
type Invite struct {
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName,omitempty"`
	Token       string    `firestore:"token"`
	CreatedBy   string    `firestore:"createdBy"`
	CreatedAt   time.Time `firestore:"createdAt"`
	RedeemedBy  string    `firestore:"redeemedBy,omitempty"`
	RedeemedAt  time.Time `firestore:"redeemedAt,omitempty"`
}

// SetInvite upserts a pending invite.
func (s *Service) SetInvite(ctx context.Context, inv Invite) error {
	const op = "store.SetInvite"
	_, err := s.Client.Collection(ColInvites).Doc(inv.Email).Set(ctx, inv)
	return wrapErr(op, err)
}

// GetInvite fetches an invite by email.
func (s *Service) GetInvite(ctx context.Context, email string) (Invite, error) {
	const op = "store.GetInvite"
	doc, err := s.Client.Collection(ColInvites).Doc(email).Get(ctx)
	if err != nil {
		return Invite{}, wrapErr(op, err)
	}
	var inv Invite
	if err := doc.DataTo(&inv); err != nil {
		return Invite{}, decodeErr(op, err)
	}
	return inv, nil
}

// MarkInviteRedeemed stamps who redeemed an invite and when.
func (s *Service) MarkInviteRedeemed(ctx context.Context, email, uid string) error {
	const op = "store.MarkInviteRedeemed"
	_, err := s.Client.Collection(ColInvites).Doc(email).Update(ctx, []firestore.Update{
		{Path: "redeemedBy", Value: uid},
		{Path: "redeemedAt", Value: time.Now()},
	})
	return wrapErr(op, err)
}
