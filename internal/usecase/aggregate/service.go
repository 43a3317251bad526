// Package aggregate computes per-member counters and per-party roll-ups
// from the raw legislative records, and writes the cached counters back to
// the member table for fast listing pages.
package aggregate

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
	"github.com/giinwatch/giin-watch/internal/infrastructure/metrics"
	uerrors "github.com/giinwatch/giin-watch/internal/usecase/errors"
)

// pageSize matches the record store's read ceiling
const pageSize = 2000

// Service recomputes member counters from full-table snapshots. Every run
// is a pure function over the snapshot; concurrent runs only race at the
// write-back, where last write wins and the next run self-corrects.
type Service struct {
	memberRepo    repositories.MemberRepository
	speechRepo    repositories.SpeechRepository
	questionRepo  repositories.QuestionRepository
	committeeRepo repositories.CommitteeRepository
	scoreRepo     repositories.ScoreRepository
	logger        *zap.Logger
}

// NewService creates a new aggregation service
func NewService(
	memberRepo repositories.MemberRepository,
	speechRepo repositories.SpeechRepository,
	questionRepo repositories.QuestionRepository,
	committeeRepo repositories.CommitteeRepository,
	scoreRepo repositories.ScoreRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		memberRepo:    memberRepo,
		speechRepo:    speechRepo,
		questionRepo:  questionRepo,
		committeeRepo: committeeRepo,
		scoreRepo:     scoreRepo,
		logger:        logger,
	}
}

// MemberCounters are the derived per-member counts
type MemberCounters struct {
	SpeechCount         int `json:"speech_count"`
	SessionCount        int `json:"session_count"`
	QuestionCount       int `json:"question_count"`
	CommitteeChairCount int `json:"committee_chair_count"`
	CommitteeExecCount  int `json:"committee_exec_count"`
}

// Recount recomputes the cached counters for every member and writes them
// back. A data-access failure aborts the run: a failed query is never
// coerced into "zero rows".
func (s *Service) Recount(ctx context.Context) error {
	started := time.Now()

	speeches, err := fetchAll(ctx, s.speechRepo.ListPage)
	if err != nil {
		return fmt.Errorf("failed to snapshot speeches: %w", err)
	}

	speechCounts := make(map[string]int)
	sessionSets := make(map[string]map[string]struct{})
	for _, sp := range speeches {
		if sp.IsProcedural {
			continue
		}
		speechCounts[sp.MemberID]++
		key := sp.Committee + ":" + sp.DateKey()
		if sessionSets[sp.MemberID] == nil {
			sessionSets[sp.MemberID] = make(map[string]struct{})
		}
		sessionSets[sp.MemberID][key] = struct{}{}
	}

	questions, err := fetchAll(ctx, s.questionRepo.ListPage)
	if err != nil {
		return fmt.Errorf("failed to snapshot questions: %w", err)
	}
	questionCounts := make(map[string]int)
	for _, q := range questions {
		questionCounts[q.MemberID]++
	}

	members, err := s.memberRepo.List(ctx, repositories.MemberFilters{})
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	for _, m := range members {
		speechCount := speechCounts[m.ID]
		sessionCount := len(sessionSets[m.ID])

		// Cannot happen by construction; surfaced anyway so a broken
		// snapshot or bad manual edit is caught rather than published.
		if sessionCount > speechCount {
			s.reportFault(entities.IntegrityFault{
				Kind:     entities.FaultSessionCountExceedsSpeeches,
				EntityID: m.ID,
				Detail:   fmt.Sprintf("session_count %d > speech_count %d", sessionCount, speechCount),
			})
		}

		if err := s.memberRepo.UpdateCounters(ctx, m.ID, speechCount, sessionCount, questionCounts[m.ID]); err != nil {
			return fmt.Errorf("failed to write counters for member %s: %w", m.ID, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("member counters recounted",
			zap.Int("members", len(members)),
			zap.Int("speech_rows", len(speeches)),
			zap.Int("question_rows", len(questions)),
			zap.Duration("elapsed", time.Since(started)),
		)
	}
	return nil
}

// CountersForMember computes the full counter set for one member,
// including committee role counts, without persisting anything.
func (s *Service) CountersForMember(ctx context.Context, memberID string) (*MemberCounters, error) {
	speeches, err := s.speechRepo.ListByMember(ctx, memberID, repositories.SpeechListOptions{})
	if err != nil {
		return nil, err
	}

	counters := &MemberCounters{}
	sessions := make(map[string]struct{})
	for _, sp := range speeches {
		if sp.IsProcedural {
			continue
		}
		counters.SpeechCount++
		sessions[sp.Committee+":"+sp.DateKey()] = struct{}{}
	}
	counters.SessionCount = len(sessions)

	questions, err := s.questionRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	counters.QuestionCount = len(questions)

	memberships, err := s.committeeRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	chair, exec := CountCommitteeRoles(memberships, s.roleFaultReporter())
	counters.CommitteeChairCount = chair
	counters.CommitteeExecCount = exec

	return counters, nil
}

// CountCommitteeRoles counts chair and exec roles. The role taxonomy is an
// open enum: unrecognized roles are reported through onUnknown and counted
// under neither bucket, never dropped silently.
func CountCommitteeRoles(memberships []*entities.CommitteeMembership, onUnknown func(*entities.CommitteeMembership)) (chair, exec int) {
	for _, m := range memberships {
		switch {
		case m.Role.IsChair():
			chair++
		case m.Role.IsExec():
			exec++
		case !m.Role.IsKnown():
			if onUnknown != nil {
				onUnknown(m)
			}
		}
	}
	return chair, exec
}

func (s *Service) roleFaultReporter() func(*entities.CommitteeMembership) {
	return func(m *entities.CommitteeMembership) {
		s.reportFault(entities.IntegrityFault{
			Kind:     entities.FaultUnrecognizedCommitteeRole,
			EntityID: m.MemberID,
			Detail:   fmt.Sprintf("committee %q has unrecognized role %q", m.Committee, m.Role),
		})
	}
}

// reportFault surfaces an invariant violation without aborting the run
func (s *Service) reportFault(fault entities.IntegrityFault) {
	metrics.IntegrityFaults.WithLabelValues(fault.Kind).Inc()
	if s.logger != nil {
		s.logger.Warn("data integrity fault",
			zap.String("kind", fault.Kind),
			zap.String("entity_id", fault.EntityID),
			zap.String("detail", fault.Detail),
		)
	}
}

// fetchAll drains a paged table read into one snapshot. Each page read is
// retried with exponential backoff before the run is abandoned.
func fetchAll[T any](ctx context.Context, page func(ctx context.Context, offset, limit int) ([]T, error)) ([]T, error) {
	var all []T
	offset := 0
	for {
		var batch []T
		fetch := func() error {
			var err error
			batch, err = page(ctx, offset, pageSize)
			return err
		}

		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = 2 * time.Second
		bo.MaxInterval = 10 * time.Second
		bo.MaxElapsedTime = 30 * time.Second

		if err := backoff.Retry(fetch, backoff.WithContext(bo, ctx)); err != nil {
			return nil, fmt.Errorf("%w: %v", uerrors.ErrSnapshotFailed, err)
		}

		all = append(all, batch...)
		if len(batch) < pageSize {
			return all, nil
		}
		offset += pageSize
	}
}
