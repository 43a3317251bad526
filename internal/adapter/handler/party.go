package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/errors"
	"github.com/giinwatch/giin-watch/internal/adapter/presenter"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
)

// Party serves party roll-up and dashboard endpoints
type Party struct {
	aggregator *aggregate.Service
	cache      aggregate.StatsCache
	logger     *zap.Logger
}

// NewParty creates a new party handler
func NewParty(aggregator *aggregate.Service, cache aggregate.StatsCache, logger *zap.Logger) *Party {
	return &Party{
		aggregator: aggregator,
		cache:      cache,
		logger:     logger,
	}
}

// List handles GET /v1/parties
func (h *Party) List(c echo.Context) error {
	stats, err := h.aggregator.PartyStats(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDataUnavailable("party statistics", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToPartyStatsResponses(stats))
}

// Detail handles GET /v1/parties/:party
func (h *Party) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	party := c.Param("party")

	stats, err := h.aggregator.PartyStats(ctx)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDataUnavailable("party statistics", err))
	}

	var found *aggregate.PartyStats
	for i := range stats {
		if stats[i].Party == party {
			found = &stats[i]
			break
		}
	}
	if found == nil {
		return HandleError(h.logger, c, errors.ErrNotFound("party"))
	}

	members, err := h.aggregator.PartyMembers(ctx, party)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list party members", err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"stats":   presenter.ToPartyStatsResponse(*found),
		"members": presenter.ToMemberResponses(members),
	})
}

// Stats handles GET /v1/stats. A computation failure reports unavailable
// rather than zeros.
func (h *Party) Stats(c echo.Context) error {
	stats, err := h.aggregator.DashboardStats(c.Request().Context(), h.cache)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDataUnavailable("dashboard statistics", err))
	}
	return HandleSuccess(h.logger, c, presenter.ToDashboardResponse(stats))
}
