package admin

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/furia-fc/team-sync/pkg/auth"
	"github.com/furia-fc/team-sync/pkg/invite"
	resend "github.com/furia-fc/team-sync/repos/resend"
	store "github.com/furia-fc/team-sync/repos/store"
)

var ErrInvalidInvite = errors.New("invite code mismatch")

// AdminService handles the invite flow: an admin invites an email, the
// invitee follows the mailed link and gets a PLAYER account.
type AdminService struct {
	storeService  *store.Service
	resendService *resend.Service
	logger        zerolog.Logger
}

func NewAdminService(storeService *store.Service, resendService *resend.Service, logger zerolog.Logger) *AdminService {
	return &AdminService{
		storeService:  storeService,
		resendService: resendService,
		logger:        logger,
	}
}

// Invite mints a code for the given email, persists its token and mails the
// link. Re-inviting the same email rotates the token, invalidating the
// previous link.
func (s *AdminService) Invite(ctx context.Context, session auth.Session, request resend.InviteRequest) error {
	code, token := invite.NewCode(request.Email)

	err := s.storeService.SetInvite(ctx, store.Invite{
		Email:       request.Email,
		DisplayName: request.DisplayName,
		Token:       token,
		CreatedBy:   session.UID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return err
	}

	return s.resendService.SendInvite(ctx, request, code)
}

// Redeem validates an invite code against the stored token and creates (or
// upgrades) the caller's user document with the PLAYER role.
func (s *AdminService) Redeem(ctx context.Context, session auth.Session, code string) (store.User, error) {
	email, token, err := invite.Decode(code)
	if err != nil {
		return store.User{}, ErrInvalidInvite
	}

	pending, err := s.storeService.GetInvite(ctx, email)
	if err != nil {
		return store.User{}, err
	}
	if pending.Token != token {
		return store.User{}, ErrInvalidInvite
	}

	displayName := pending.DisplayName
	if displayName == "" {
		displayName = session.DisplayName
	}
	user := store.User{
		ID:          session.UID,
		Email:       email,
		DisplayName: displayName,
		Role:        store.RolePlayer,
		CreatedAt:   time.Now(),
	}
	if err := s.storeService.SetUser(ctx, user); err != nil {
		return store.User{}, err
	}

	if err := s.storeService.MarkInviteRedeemed(ctx, email, session.UID); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to mark invite redeemed")
	}
	return user, nil
}
