package events

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furia-fc/team-sync/pkg/auth"
	store "github.com/furia-fc/team-sync/repos/store"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Events is the interface for the events service.
type Events interface {
	ListUpcoming(ctx context.Context) ([]EventView, error)
	ListArchived(ctx context.Context) ([]store.Event, error)
	Create(ctx context.Context, session auth.Session, req EventRequest) ([]store.Event, error)
	Update(ctx context.Context, session auth.Session, eventID string, req EventUpdateRequest) error
	Vote(ctx context.Context, session auth.Session, eventID string, req VoteRequest) (store.Attendance, error)
	Suspend(ctx context.Context, session auth.Session, eventID string, suspended bool) error
	Delete(ctx context.Context, eventID string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Events

	// The router instance to configure the HTTP routes.
	Router Router

	// Writer gates mutations, Admin gates suspension and deletion.
	Writer gin.HandlerFunc
	Admin  gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/upcoming", h.listUpcomingHandler)
	r.GET("/archive", h.listArchivedHandler)
	r.POST("/create", opts.Writer, h.createHandler)
	r.POST("/:event_id/update", opts.Writer, h.updateHandler)
	r.POST("/:event_id/vote", opts.Writer, h.voteHandler)
	r.POST("/:event_id/suspend", opts.Admin, h.suspendHandler)
	r.POST("/:event_id/unsuspend", opts.Admin, h.unsuspendHandler)
	r.DELETE("/:event_id", opts.Admin, h.deleteHandler)
}

type httpHandler struct {
	HTTPOptions
}

func statusFor(err error) int {
	switch store.KindOf(err) {
	case store.KindUnavailable:
		return http.StatusServiceUnavailable
	case store.KindPermissionDenied:
		return http.StatusForbidden
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := "something went wrong"
	if status == http.StatusBadRequest {
		msg = err.Error()
	}
	c.JSON(status, gin.H{"error": msg})
	c.Abort()
}

func (h *httpHandler) listUpcomingHandler(c *gin.Context) {
	views, err := h.Service.ListUpcoming(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": views})
}

func (h *httpHandler) listArchivedHandler(c *gin.Context) {
	events, err := h.Service.ListArchived(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *httpHandler) createHandler(c *gin.Context) {
	session, err := auth.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		c.Abort()
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	created, err := h.Service.Create(c, session, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": created})
}

func (h *httpHandler) updateHandler(c *gin.Context) {
	session, err := auth.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		c.Abort()
		return
	}

	var req EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := h.Service.Update(c, session, c.Param("event_id"), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated"})
}

func (h *httpHandler) voteHandler(c *gin.Context) {
	session, err := auth.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		c.Abort()
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	att, err := h.Service.Vote(c, session, c.Param("event_id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": att})
}

func (h *httpHandler) suspendHandler(c *gin.Context) {
	h.setSuspended(c, true)
}

func (h *httpHandler) unsuspendHandler(c *gin.Context) {
	h.setSuspended(c, false)
}

func (h *httpHandler) setSuspended(c *gin.Context, suspended bool) {
	session, err := auth.CurrentSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		c.Abort()
		return
	}
	if err := h.Service.Suspend(c, session, c.Param("event_id"), suspended); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated"})
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c, c.Param("event_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
