package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/giinwatch/giin-watch/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	memberHandler *Member
	partyHandler  *Party
	whipHandler   *Whip
	scoreHandler  *Score
	metaHandler   *Meta
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	memberHandler *Member,
	partyHandler *Party,
	whipHandler *Whip,
	scoreHandler *Score,
	metaHandler *Meta,
) *Router {
	return &Router{
		cfg:           cfg,
		memberHandler: memberHandler,
		partyHandler:  partyHandler,
		whipHandler:   whipHandler,
		scoreHandler:  scoreHandler,
		metaHandler:   metaHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")

	rt.setupMemberRoutes(v1)
	rt.setupPartyRoutes(v1)
	rt.setupWhipRoutes(v1)
	rt.setupScoreRoutes(v1)
	rt.setupMetaRoutes(v1)
}

func (rt *Router) setupMemberRoutes(g *echo.Group) {
	g.GET("/members", rt.memberHandler.List)
	g.GET("/members/:id", rt.memberHandler.Detail)
	g.GET("/rankings", rt.memberHandler.Rankings)
}

func (rt *Router) setupPartyRoutes(g *echo.Group) {
	g.GET("/parties", rt.partyHandler.List)
	g.GET("/parties/:party", rt.partyHandler.Detail)
	g.GET("/stats", rt.partyHandler.Stats)
}

func (rt *Router) setupWhipRoutes(g *echo.Group) {
	g.GET("/party-whip/deviations", rt.whipHandler.Deviations)
	g.POST("/admin/whip/backfill", rt.whipHandler.Backfill)
}

func (rt *Router) setupScoreRoutes(g *echo.Group) {
	g.GET("/scores/:memberId", rt.scoreHandler.Get)
	g.POST("/admin/recalculate", rt.scoreHandler.Recalculate)
}

func (rt *Router) setupMetaRoutes(g *echo.Group) {
	g.GET("/meta", rt.metaHandler.Get)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
