package auth

import (
	"errors"

	"github.com/gin-gonic/gin"

	store "github.com/furia-fc/team-sync/repos/store"
)

const sessionKey = "session"

// Session identifies the authenticated caller for the duration of one
// request. It replaces ambient current-user state: repositories and services
// receive it explicitly.
type Session struct {
	UID         string
	Email       string
	DisplayName string
	Role        store.Role
}

// IsReadOnly reports whether the session is barred from all write paths.
// VIEWER is the demo role: it sees everything and mutates nothing, and its
// votes never reach the counters because it cannot vote at all.
func (s Session) IsReadOnly() bool {
	return s.Role == store.RoleViewer
}

// IsAdmin reports whether the session may perform admin actions.
func (s Session) IsAdmin() bool {
	return s.Role == store.RoleAdmin
}

var ErrNoSession = errors.New("no session in request context")

// CurrentSession extracts the session the middleware attached to the request.
func CurrentSession(c *gin.Context) (Session, error) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, ErrNoSession
	}
	session, ok := v.(Session)
	if !ok {
		return Session{}, ErrNoSession
	}
	return session, nil
}
