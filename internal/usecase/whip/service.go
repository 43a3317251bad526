package whip

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
	"github.com/giinwatch/giin-watch/internal/infrastructure/metrics"
)

// ListOptions filters the deviation feed. Zero values mean "no filter".
// IncludeUnknown lifts the default suppression of unknown-confidence
// entries for completeness audits.
type ListOptions struct {
	MemberID       string
	Party          string
	BillID         string
	IncludeUnknown bool
}

// Service computes whip deviations on demand
type Service struct {
	memberRepo repositories.MemberRepository
	voteRepo   repositories.VoteRepository
	billRepo   repositories.BillRepository
	whipRepo   repositories.WhipRepository
	logger     *zap.Logger
}

// NewService creates a new whip deviation service
func NewService(
	memberRepo repositories.MemberRepository,
	voteRepo repositories.VoteRepository,
	billRepo repositories.BillRepository,
	whipRepo repositories.WhipRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		memberRepo: memberRepo,
		voteRepo:   voteRepo,
		billRepo:   billRepo,
		whipRepo:   whipRepo,
		logger:     logger,
	}
}

// ListDeviations returns the deviation feed for the given filters, vote
// date descending. Integrity faults found along the way are logged and
// counted but never abort the listing.
func (s *Service) ListDeviations(ctx context.Context, opts ListOptions) ([]entities.WhipDeviation, error) {
	members, err := s.scopedMembers(ctx, opts)
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]*entities.Member, len(members))
	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		lookup[m.ID] = m
		memberIDs = append(memberIDs, m.ID)
	}

	votes, err := s.scopedVotes(ctx, opts, memberIDs)
	if err != nil {
		return nil, err
	}

	billIDs := uniqueBillIDs(votes)
	records, err := s.whipRepo.ListByBills(ctx, billIDs)
	if err != nil {
		return nil, err
	}

	result := Detect(votes, records, func(memberID string) (string, string, bool) {
		m := lookup[memberID]
		if m == nil {
			return "", "", false
		}
		return m.Name, m.Party, true
	})
	for _, fault := range result.Faults {
		metrics.IntegrityFaults.WithLabelValues(fault.Kind).Inc()
		if s.logger != nil {
			s.logger.Warn("whip record integrity fault",
				zap.String("kind", fault.Kind),
				zap.String("entity_id", fault.EntityID),
				zap.String("detail", fault.Detail),
			)
		}
	}

	return FilterByConfidence(result.Deviations, opts.IncludeUnknown), nil
}

// BackfillInferredStances fills whip records for bills where a party has
// no collected position but its voting pattern is decisive. Existing
// records are never overwritten; inference only adds where collection
// found nothing.
func (s *Service) BackfillInferredStances(ctx context.Context, billID string) (int, error) {
	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		return 0, err
	}

	votes, err := s.voteRepo.ListByBill(ctx, billID)
	if err != nil {
		return 0, err
	}

	members, err := s.memberLookup(ctx)
	if err != nil {
		return 0, err
	}

	byParty := make(map[string][]*entities.Vote)
	for _, v := range votes {
		m := members[v.MemberID]
		if m == nil {
			continue
		}
		byParty[m.Party] = append(byParty[m.Party], v)
	}

	written := 0
	for party, partyVotes := range byParty {
		existing, err := s.whipRepo.FindByBillAndParty(ctx, billID, party)
		if err != nil {
			return written, err
		}
		if existing != nil {
			continue
		}
		stance := InferStance(partyVotes)
		if stance == nil {
			continue
		}
		record := &entities.PartyWhipRecord{
			BillID:           billID,
			BillName:         bill.Title,
			Party:            party,
			OfficialStance:   stance,
			StanceConfidence: entities.ConfidenceInferred,
			UpdatedAt:        time.Now(),
		}
		if err := s.whipRepo.Upsert(ctx, record); err != nil {
			return written, err
		}
		written++
	}

	if s.logger != nil && written > 0 {
		s.logger.Info("backfilled inferred whip stances",
			zap.String("bill_id", billID),
			zap.Int("records", written),
		)
	}
	return written, nil
}

func (s *Service) scopedMembers(ctx context.Context, opts ListOptions) ([]*entities.Member, error) {
	if opts.MemberID != "" {
		m, err := s.memberRepo.FindByID(ctx, opts.MemberID)
		if err != nil {
			return nil, err
		}
		return []*entities.Member{m}, nil
	}
	if opts.Party != "" {
		return s.memberRepo.ListByParty(ctx, opts.Party)
	}
	return s.memberRepo.List(ctx, repositories.MemberFilters{})
}

func (s *Service) scopedVotes(ctx context.Context, opts ListOptions, memberIDs []string) ([]*entities.Vote, error) {
	if opts.BillID != "" {
		votes, err := s.voteRepo.ListByBill(ctx, opts.BillID)
		if err != nil {
			return nil, err
		}
		if opts.MemberID == "" && opts.Party == "" {
			return votes, nil
		}
		allowed := make(map[string]struct{}, len(memberIDs))
		for _, id := range memberIDs {
			allowed[id] = struct{}{}
		}
		scoped := votes[:0]
		for _, v := range votes {
			if _, ok := allowed[v.MemberID]; ok {
				scoped = append(scoped, v)
			}
		}
		return scoped, nil
	}
	if opts.MemberID != "" {
		return s.voteRepo.ListByMember(ctx, opts.MemberID)
	}
	return s.voteRepo.ListByMembers(ctx, memberIDs)
}

func (s *Service) memberLookup(ctx context.Context) (map[string]*entities.Member, error) {
	members, err := s.memberRepo.List(ctx, repositories.MemberFilters{})
	if err != nil {
		return nil, err
	}
	lookup := make(map[string]*entities.Member, len(members))
	for _, m := range members {
		lookup[m.ID] = m
	}
	return lookup, nil
}

func uniqueBillIDs(votes []*entities.Vote) []string {
	seen := make(map[string]struct{}, len(votes))
	ids := make([]string, 0, len(votes))
	for _, v := range votes {
		if _, ok := seen[v.BillID]; ok {
			continue
		}
		seen[v.BillID] = struct{}{}
		ids = append(ids, v.BillID)
	}
	return ids
}
