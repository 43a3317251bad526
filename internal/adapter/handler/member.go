package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/errors"
	memberDTO "github.com/giinwatch/giin-watch/internal/adapter/dto/member"
	"github.com/giinwatch/giin-watch/internal/adapter/presenter"
	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
	"github.com/giinwatch/giin-watch/internal/usecase/session"
)

// Member serves member listing, detail and ranking endpoints
type Member struct {
	memberRepo    repositories.MemberRepository
	speechRepo    repositories.SpeechRepository
	questionRepo  repositories.QuestionRepository
	voteRepo      repositories.VoteRepository
	billRepo      repositories.BillRepository
	committeeRepo repositories.CommitteeRepository
	scoreRepo     repositories.ScoreRepository
	aggregator    *aggregate.Service
	logger        *zap.Logger
}

// NewMember creates a new member handler
func NewMember(
	memberRepo repositories.MemberRepository,
	speechRepo repositories.SpeechRepository,
	questionRepo repositories.QuestionRepository,
	voteRepo repositories.VoteRepository,
	billRepo repositories.BillRepository,
	committeeRepo repositories.CommitteeRepository,
	scoreRepo repositories.ScoreRepository,
	aggregator *aggregate.Service,
	logger *zap.Logger,
) *Member {
	return &Member{
		memberRepo:    memberRepo,
		speechRepo:    speechRepo,
		questionRepo:  questionRepo,
		voteRepo:      voteRepo,
		billRepo:      billRepo,
		committeeRepo: committeeRepo,
		scoreRepo:     scoreRepo,
		aggregator:    aggregator,
		logger:        logger,
	}
}

// List handles GET /v1/members. Alphabetical listing; zero-count members
// stay visible here, unlike the rankings.
func (h *Member) List(c echo.Context) error {
	var req memberDTO.ListMembersRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	filters := repositories.MemberFilters{}
	switch req.Status {
	case "", "active":
		active := true
		filters.IsActive = &active
	case "former":
		former := false
		filters.IsActive = &former
	case "all":
	}
	if req.Party != "" {
		filters.Party = &req.Party
	}
	if req.House != "" {
		house := entities.House(req.House)
		filters.House = &house
	}

	members, err := h.memberRepo.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list members", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMemberResponses(members))
}

// Detail handles GET /v1/members/:id
func (h *Member) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	m, err := h.memberRepo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMemberNotFound) {
			return HandleError(h.logger, c, errors.ErrMemberNotFound(id))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("find member", err))
	}

	speeches, err := h.speechRepo.ListByMember(ctx, id, repositories.SpeechListOptions{})
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list speeches", err))
	}
	grouped := session.Group(speeches)

	questions, err := h.questionRepo.ListByMember(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list questions", err))
	}
	votes, err := h.voteRepo.ListByMember(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list votes", err))
	}
	bills, err := h.billRepo.ListByMember(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list bills", err))
	}
	committees, err := h.committeeRepo.ListByMember(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list committees", err))
	}

	// Live counter set, committee roles included. The cached columns on
	// the member row only refresh with the pipeline.
	counters, err := h.aggregator.CountersForMember(ctx, id)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDataUnavailable("member counters", err))
	}

	detail := &memberDTO.MemberDetailResponse{
		Member:     presenter.ToMemberResponse(m),
		Counters:   presenter.ToCountersResponse(counters),
		Sessions:   presenter.ToSessionResponses(grouped.Sessions),
		Questions:  presenter.ToQuestionResponses(questions),
		Votes:      presenter.ToVoteResponses(votes),
		Bills:      presenter.ToBillResponses(bills),
		Committees: presenter.ToCommitteeResponses(committees),
	}

	// Missing score means the pipeline has not run yet; the page still
	// renders without it.
	score, err := h.scoreRepo.FindByMember(ctx, id)
	if err == nil {
		detail.Score = presenter.ToScoreResponse(score)
	} else if !stdErrors.Is(err, entities.ErrScoreNotFound) {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("find score", err))
	}

	return HandleSuccess(h.logger, c, detail)
}

// Rankings handles GET /v1/rankings
func (h *Member) Rankings(c echo.Context) error {
	var req memberDTO.RankingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	metric := aggregate.RankBySessions
	if req.Metric != "" {
		metric = aggregate.RankingMetric(req.Metric)
		if !metric.IsValid() {
			return HandleError(h.logger, c, errors.ErrInvalidMetric(req.Metric))
		}
	}
	limit := req.Limit
	if limit == 0 {
		limit = 50
	}

	members, err := h.memberRepo.ListActive(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list members", err))
	}

	ranked := aggregate.RankMembers(members, metric, req.IncludeZero, limit)
	return HandleSuccess(h.logger, c, presenter.ToMemberResponses(ranked))
}
