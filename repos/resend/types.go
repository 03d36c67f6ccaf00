package resend

// InviteRequest is the payload an admin posts to invite a player.
type InviteRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
}
