package handler

import (
	"context"
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/errors"
	"github.com/giinwatch/giin-watch/internal/adapter/presenter"
	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
	uerrors "github.com/giinwatch/giin-watch/internal/usecase/errors"
	"github.com/giinwatch/giin-watch/internal/usecase/refresh"
	"github.com/giinwatch/giin-watch/pkg/jobcontext"
)

// Longest a triggered recalculation is allowed to run detached from the
// originating request.
const recalcTimeout = 10 * time.Minute

// Score serves activity score reads and the admin recalculation trigger
type Score struct {
	scoreRepo repositories.ScoreRepository
	pipeline  *refresh.Pipeline
	logger    *zap.Logger
}

// NewScore creates a new score handler
func NewScore(scoreRepo repositories.ScoreRepository, pipeline *refresh.Pipeline, logger *zap.Logger) *Score {
	return &Score{
		scoreRepo: scoreRepo,
		pipeline:  pipeline,
		logger:    logger,
	}
}

// Get handles GET /v1/scores/:memberId
func (h *Score) Get(c echo.Context) error {
	memberID := c.Param("memberId")

	score, err := h.scoreRepo.FindByMember(c.Request().Context(), memberID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrScoreNotFound) {
			return HandleError(h.logger, c, errors.ErrScoreNotFound(memberID))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("find score", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToScoreResponse(score))
}

// Recalculate handles POST /v1/admin/recalculate. The run continues in the
// background; the response only acknowledges the trigger.
func (h *Score) Recalculate(c echo.Context) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recalcTimeout)
		defer cancel()
		ctx = jobcontext.RunBegin(ctx, jobcontext.TriggerManual)

		if err := h.pipeline.Run(ctx); err != nil {
			if stdErrors.Is(err, uerrors.ErrRecalcInFlight) {
				if h.logger != nil {
					h.logger.Info("recalculation already running, trigger ignored")
				}
				return
			}
			if h.logger != nil {
				h.logger.Error("triggered recalculation failed", zap.Error(err))
			}
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{
		"status": "recalculation started",
	})
}
