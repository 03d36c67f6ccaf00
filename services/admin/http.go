package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furia-fc/team-sync/pkg/auth"
	resend "github.com/furia-fc/team-sync/repos/resend"
	store "github.com/furia-fc/team-sync/repos/store"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Admin is the interface for the admin service.
type Admin interface {
	Invite(ctx context.Context, session auth.Session, request resend.InviteRequest) error
	Redeem(ctx context.Context, session auth.Session, code string) (store.User, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Admin

	// The router instance to configure the HTTP routes.
	Router Router

	// Admin gates invite creation.
	Admin gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/invite", opts.Admin, h.inviteHandler)
	r.GET("/join/:code", h.joinHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) inviteHandler(c *gin.Context) {
	session, err := auth.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		c.Abort()
		return
	}

	var request resend.InviteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.Invite(c, session, request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invite sent", "email": request.Email})
}

func (h *httpHandler) joinHandler(c *gin.Context) {
	session, err := auth.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		c.Abort()
		return
	}

	user, err := h.Service.Redeem(c, session, c.Param("code"))
	if err != nil {
		if errors.Is(err, ErrInvalidInvite) || store.IsNotFound(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a valid invite code"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
