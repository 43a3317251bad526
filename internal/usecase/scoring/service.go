package scoring

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
	"github.com/giinwatch/giin-watch/internal/infrastructure/metrics"
	"github.com/giinwatch/giin-watch/internal/usecase/session"
)

// scoreWorkers bounds the per-member scoring parallelism. Every member's
// computation is independent, so partitioning by member id is safe.
const scoreWorkers = 8

// Service recomputes activity scores. Each run takes a fresh snapshot of
// the raw records and fully overwrites every member's score row.
type Service struct {
	memberRepo    repositories.MemberRepository
	speechRepo    repositories.SpeechRepository
	questionRepo  repositories.QuestionRepository
	voteRepo      repositories.VoteRepository
	billRepo      repositories.BillRepository
	committeeRepo repositories.CommitteeRepository
	scoreRepo     repositories.ScoreRepository
	calc          *Calculator
	logger        *zap.Logger
}

// NewService creates a new scoring service
func NewService(
	memberRepo repositories.MemberRepository,
	speechRepo repositories.SpeechRepository,
	questionRepo repositories.QuestionRepository,
	voteRepo repositories.VoteRepository,
	billRepo repositories.BillRepository,
	committeeRepo repositories.CommitteeRepository,
	scoreRepo repositories.ScoreRepository,
	calc *Calculator,
	logger *zap.Logger,
) *Service {
	return &Service{
		memberRepo:    memberRepo,
		speechRepo:    speechRepo,
		questionRepo:  questionRepo,
		voteRepo:      voteRepo,
		billRepo:      billRepo,
		committeeRepo: committeeRepo,
		scoreRepo:     scoreRepo,
		calc:          calc,
		logger:        logger,
	}
}

// RecalculateAll scores every active member. Data-access failures abort
// the run; a zero-row member is scored as zero, never skipped.
func (s *Service) RecalculateAll(ctx context.Context) (int, error) {
	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list members for scoring: %w", err)
	}

	calculatedAt := time.Now().UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for _, member := range members {
		member := member
		g.Go(func() error {
			return s.scoreMember(gctx, member, calculatedAt)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Info("activity scores recalculated",
			zap.Int("members", len(members)),
			zap.Time("calculated_at", calculatedAt),
		)
	}
	return len(members), nil
}

// ScoreMember recomputes and persists one member's score
func (s *Service) ScoreMember(ctx context.Context, memberID string) (*entities.ActivityScore, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.scoreMember(ctx, member, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.scoreRepo.FindByMember(ctx, memberID)
}

func (s *Service) scoreMember(ctx context.Context, member *entities.Member, calculatedAt time.Time) error {
	stats, err := s.collectStats(ctx, member)
	if err != nil {
		return fmt.Errorf("failed to collect stats for member %s: %w", member.ID, err)
	}

	b := s.calc.Calculate(stats)
	score := &entities.ActivityScore{
		MemberID:     member.ID,
		Attendance:   b.Attendance,
		Speeches:     b.Speeches,
		Questions:    b.Questions,
		Bills:        b.Bills,
		Committee:    b.Committee,
		Total:        b.Total,
		CalculatedAt: calculatedAt,
	}

	if err := s.scoreRepo.Upsert(ctx, score); err != nil {
		return err
	}
	metrics.ScoresComputed.Inc()
	return nil
}

// collectStats assembles the raw inputs for one member. Sub-inputs that
// the member's chamber does not publish stay nil so the calculator can
// distinguish "not applicable" from zero.
func (s *Service) collectStats(ctx context.Context, member *entities.Member) (Stats, error) {
	stats := Stats{MemberID: member.ID}

	speeches, err := s.speechRepo.ListByMember(ctx, member.ID, repositories.SpeechListOptions{})
	if err != nil {
		return Stats{}, err
	}
	stats.SessionCount = session.Count(speeches)

	questions, err := s.questionRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return Stats{}, err
	}
	stats.QuestionCount = len(questions)

	bills, err := s.billRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return Stats{}, err
	}
	stats.SponsoredBills = len(bills)

	memberships, err := s.committeeRepo.ListByMember(ctx, member.ID)
	if err != nil {
		return Stats{}, err
	}
	stats.CommitteeRate = CommitteeParticipationRate(memberships)

	// Attendance is derived from vote presence, which only one chamber
	// publishes; the other resolves to "not applicable".
	if member.House.PublishesVoteRecords() {
		votes, err := s.voteRepo.ListByMember(ctx, member.ID)
		if err != nil {
			return Stats{}, err
		}
		stats.AttendanceRate = AttendanceRate(votes)
	}

	return stats, nil
}

// AttendanceRate derives an attendance rate from vote presence: any choice
// other than 欠席 counts as present. Nil when no votes were recorded.
func AttendanceRate(votes []*entities.Vote) *float64 {
	if len(votes) == 0 {
		return nil
	}
	present := 0
	for _, v := range votes {
		if v.Choice != entities.VoteAbsent {
			present++
		}
	}
	rate := float64(present) / float64(len(votes))
	return &rate
}

// CommitteeParticipationRate normalizes committee involvement into a
// 0.0-1.0 rate. Plain membership earns 0.25, an exec role 0.35 and a chair
// 0.5, capped at 1.0. Monotonic in involvement and zero for no seats.
func CommitteeParticipationRate(memberships []*entities.CommitteeMembership) *float64 {
	rate := 0.0
	for _, m := range memberships {
		switch {
		case m.Role.IsChair():
			rate += 0.5
		case m.Role.IsExec():
			rate += 0.35
		default:
			rate += 0.25
		}
	}
	if rate > 1.0 {
		rate = 1.0
	}
	return &rate
}
