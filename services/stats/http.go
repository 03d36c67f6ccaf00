package stats

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	store "github.com/furia-fc/team-sync/repos/store"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Stats is the interface for the stats service.
type Stats interface {
	List(ctx context.Context) ([]store.PlayerStats, error)
	Reprocess(ctx context.Context) error
	RecalculateAttendance(ctx context.Context) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Stats

	// The router instance to configure the HTTP routes.
	Router Router

	// Admin gates the repair endpoints.
	Admin gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/all", h.listHandler)
	r.POST("/reprocess", opts.Admin, h.reprocessHandler)
	r.POST("/recalculate", opts.Admin, h.recalculateHandler)
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

func (h *httpHandler) listHandler(c *gin.Context) {
	all, err := h.Service.List(c)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": all})
}

func (h *httpHandler) reprocessHandler(c *gin.Context) {
	if err := h.Service.Reprocess(c); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reprocessing done"})
}

func (h *httpHandler) recalculateHandler(c *gin.Context) {
	if err := h.Service.RecalculateAttendance(c); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recalculation done"})
}
