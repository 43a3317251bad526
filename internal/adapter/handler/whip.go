package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/errors"
	whipDTO "github.com/giinwatch/giin-watch/internal/adapter/dto/whip"
	"github.com/giinwatch/giin-watch/internal/adapter/presenter"
	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/usecase/whip"
)

// Whip serves the party-whip deviation feed
type Whip struct {
	service *whip.Service
	logger  *zap.Logger
}

// NewWhip creates a new whip handler
func NewWhip(service *whip.Service, logger *zap.Logger) *Whip {
	return &Whip{
		service: service,
		logger:  logger,
	}
}

// Deviations handles GET /v1/party-whip/deviations
func (h *Whip) Deviations(c echo.Context) error {
	var req whipDTO.DeviationsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}

	deviations, err := h.service.ListDeviations(c.Request().Context(), whip.ListOptions{
		MemberID:       req.MemberID,
		Party:          req.Party,
		BillID:         req.BillID,
		IncludeUnknown: req.IncludeUnknown,
	})
	if err != nil {
		if stdErrors.Is(err, entities.ErrMemberNotFound) {
			return HandleError(h.logger, c, errors.ErrMemberNotFound(req.MemberID))
		}
		return HandleError(h.logger, c, errors.ErrDataUnavailable("deviation feed", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToDeviationResponses(deviations))
}

// Backfill handles POST /v1/admin/whip/backfill. It infers missing party
// stances for one bill from that party's own voting pattern.
func (h *Whip) Backfill(c echo.Context) error {
	var req whipDTO.BackfillRequest
	req.BillID = c.QueryParam("billId")
	if req.BillID == "" {
		if err := c.Bind(&req); err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
		}
	}
	if req.BillID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("billId is required"))
	}

	written, err := h.service.BackfillInferredStances(c.Request().Context(), req.BillID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrBillNotFound) {
			return HandleError(h.logger, c, errors.ErrBillNotFound(req.BillID))
		}
		return HandleError(h.logger, c, errors.ErrDataUnavailable("stance inference", err))
	}

	return HandleSuccess(h.logger, c, whipDTO.BackfillResponse{
		BillID:         req.BillID,
		RecordsWritten: written,
	})
}
