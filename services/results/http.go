package results

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
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Results is the interface for the results service.
type Results interface {
	SaveResult(ctx context.Context, eventID string, req ResultRequest) (store.MatchResult, error)
	GetResult(ctx context.Context, eventID string) (store.MatchResult, error)
	DeleteMatch(ctx context.Context, eventID string) error
	ListRivals(ctx context.Context) ([]store.Rival, error)
	CreateRival(ctx context.Context, req RivalRequest) (store.Rival, error)
	UpdateRival(ctx context.Context, id string, req RivalRequest) error
	DeleteRival(ctx context.Context, id string) error
	ListFixtures(ctx context.Context) ([]store.Fixture, error)
	CreateFixture(ctx context.Context, req FixtureRequest) (store.Fixture, error)
	LinkFixtureResult(ctx context.Context, fixtureID, resultID string) error
	DeleteFixture(ctx context.Context, id string) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Results

	// The router instance to configure the HTTP routes.
	Router Router

	// Writer gates mutations, Admin gates destructive admin actions.
	Writer gin.HandlerFunc
	Admin  gin.HandlerFunc
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/result/:event_id", h.getResultHandler)
	r.POST("/result/:event_id", opts.Writer, h.saveResultHandler)
	r.DELETE("/match/:event_id", opts.Admin, h.deleteMatchHandler)

	r.GET("/rivals", h.listRivalsHandler)
	r.POST("/rivals", opts.Admin, h.createRivalHandler)
	r.POST("/rivals/:rival_id", opts.Admin, h.updateRivalHandler)
	r.DELETE("/rivals/:rival_id", opts.Admin, h.deleteRivalHandler)

	r.GET("/fixtures", h.listFixturesHandler)
	r.POST("/fixtures", opts.Admin, h.createFixtureHandler)
	r.POST("/fixtures/:fixture_id/result/:result_id", opts.Admin, h.linkFixtureHandler)
	r.DELETE("/fixtures/:fixture_id", opts.Admin, h.deleteFixtureHandler)
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

func (h *httpHandler) getResultHandler(c *gin.Context) {
	result, err := h.Service.GetResult(c, c.Param("event_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *httpHandler) saveResultHandler(c *gin.Context) {
	var req ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	result, err := h.Service.SaveResult(c, c.Param("event_id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *httpHandler) deleteMatchHandler(c *gin.Context) {
	if err := h.Service.DeleteMatch(c, c.Param("event_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Match deleted"})
}

func (h *httpHandler) listRivalsHandler(c *gin.Context) {
	rivals, err := h.Service.ListRivals(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rivals": rivals})
}

func (h *httpHandler) createRivalHandler(c *gin.Context) {
	var req RivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	rival, err := h.Service.CreateRival(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rival": rival})
}

func (h *httpHandler) updateRivalHandler(c *gin.Context) {
	var req RivalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if err := h.Service.UpdateRival(c, c.Param("rival_id"), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rival updated"})
}

func (h *httpHandler) deleteRivalHandler(c *gin.Context) {
	if err := h.Service.DeleteRival(c, c.Param("rival_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rival deleted"})
}

func (h *httpHandler) listFixturesHandler(c *gin.Context) {
	fixtures, err := h.Service.ListFixtures(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixtures": fixtures})
}

func (h *httpHandler) createFixtureHandler(c *gin.Context) {
	var req FixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	fixture, err := h.Service.CreateFixture(c, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixture": fixture})
}

func (h *httpHandler) linkFixtureHandler(c *gin.Context) {
	if err := h.Service.LinkFixtureResult(c, c.Param("fixture_id"), c.Param("result_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixture linked"})
}

func (h *httpHandler) deleteFixtureHandler(c *gin.Context) {
	if err := h.Service.DeleteFixture(c, c.Param("fixture_id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixture deleted"})
}
