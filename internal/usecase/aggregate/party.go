package aggregate

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

// PartyStats is the per-party roll-up over active members
type PartyStats struct {
	Party          string `json:"party"`
	MemberCount    int    `json:"member_count"`
	TotalSessions  int    `json:"total_sessions"`
	TotalQuestions int    `json:"total_questions"`
	TotalScore     int    `json:"total_score"`
	ScorePerMember int    `json:"score_per_member"`
}

// RollupParties groups active members by party and sums the per-member
// metrics. scores maps member id to total activity score; members missing
// from it contribute 0. Output is sorted by party name so the result never
// depends on map iteration order.
func RollupParties(members []*entities.Member, scores map[string]int) []PartyStats {
	byParty := make(map[string]*PartyStats)
	for _, m := range members {
		if !m.IsActive {
			continue
		}
		stats := byParty[m.Party]
		if stats == nil {
			stats = &PartyStats{Party: m.Party}
			byParty[m.Party] = stats
		}
		stats.MemberCount++
		stats.TotalSessions += m.SessionCount
		stats.TotalQuestions += m.QuestionCount
		stats.TotalScore += scores[m.ID]
	}

	result := make([]PartyStats, 0, len(byParty))
	for _, stats := range byParty {
		if stats.MemberCount > 0 {
			stats.ScorePerMember = int(math.Round(float64(stats.TotalScore) / float64(stats.MemberCount)))
		}
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Party < result[j].Party
	})
	return result
}

// RankingMetric selects the counter a ranking sorts by
type RankingMetric string

const (
	RankBySessions  RankingMetric = "session"
	RankByQuestions RankingMetric = "question"
	RankBySpeeches  RankingMetric = "speech"
)

// IsValid checks if the ranking metric is valid
func (m RankingMetric) IsValid() bool {
	switch m {
	case RankBySessions, RankByQuestions, RankBySpeeches:
		return true
	}
	return false
}

// RankMembers sorts members by the chosen metric, descending, with a
// stable name-reading tie-break. Zero-value entries are excluded unless
// includeZero is set: the exclusion is presentation policy, so the caller
// always decides.
func RankMembers(members []*entities.Member, metric RankingMetric, includeZero bool, limit int) []*entities.Member {
	value := func(m *entities.Member) int {
		switch metric {
		case RankByQuestions:
			return m.QuestionCount
		case RankBySpeeches:
			return m.SpeechCount
		default:
			return m.SessionCount
		}
	}

	ranked := make([]*entities.Member, 0, len(members))
	for _, m := range members {
		if !includeZero && value(m) == 0 {
			continue
		}
		ranked = append(ranked, m)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := value(ranked[i]), value(ranked[j])
		if vi != vj {
			return vi > vj
		}
		if ranked[i].NameReading != ranked[j].NameReading {
			return ranked[i].NameReading < ranked[j].NameReading
		}
		return ranked[i].ID < ranked[j].ID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// PartyBreakdown is one party's share of the active membership
type PartyBreakdown struct {
	Party string `json:"party"`
	Count int    `json:"count"`
}

// DashboardStats is the front-page summary
type DashboardStats struct {
	TotalMembers   int              `json:"total_members"`
	TotalSpeeches  int              `json:"total_speeches"`
	TotalQuestions int              `json:"total_questions"`
	PartyBreakdown []PartyBreakdown `json:"party_breakdown"`
}

// BuildDashboardStats sums the cached member counters. Breakdown is
// ordered by member count descending, party name breaking ties.
func BuildDashboardStats(members []*entities.Member) DashboardStats {
	stats := DashboardStats{TotalMembers: len(members)}

	counts := make(map[string]int)
	for _, m := range members {
		counts[m.Party]++
		stats.TotalSpeeches += m.SpeechCount
		stats.TotalQuestions += m.QuestionCount
	}

	for party, count := range counts {
		stats.PartyBreakdown = append(stats.PartyBreakdown, PartyBreakdown{Party: party, Count: count})
	}
	sort.Slice(stats.PartyBreakdown, func(i, j int) bool {
		a, b := stats.PartyBreakdown[i], stats.PartyBreakdown[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Party < b.Party
	})
	return stats
}

// PartyStats returns the roll-up for every party with active members,
// sorted by party name
func (s *Service) PartyStats(ctx context.Context) ([]PartyStats, error) {
	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.scoreRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int, len(scores))
	for _, score := range scores {
		totals[score.MemberID] = score.Total
	}
	return RollupParties(members, totals), nil
}

// PartyMembers returns the active members of one party, alphabetical
func (s *Service) PartyMembers(ctx context.Context, party string) ([]*entities.Member, error) {
	return s.memberRepo.ListByParty(ctx, party)
}

// StatsCache caches serialized dashboard stats between recomputations
type StatsCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}

const (
	dashboardCacheKey = "dashboard_stats"
	dashboardCacheTTL = 5 * time.Minute
)

// DashboardStats returns the front-page summary, served from cache when a
// recent copy exists. A stats computation failure is returned as-is: the
// caller shows "data unavailable" rather than fabricated zeros.
func (s *Service) DashboardStats(ctx context.Context, cache StatsCache) (*DashboardStats, error) {
	if cache != nil {
		if raw, ok := cache.Get(ctx, dashboardCacheKey); ok {
			var cached DashboardStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			// Corrupt cache entry: fall through and recompute.
			if s.logger != nil {
				s.logger.Warn("discarding unreadable dashboard cache entry")
			}
		}
	}

	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	stats := BuildDashboardStats(members)

	if cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			cache.Set(ctx, dashboardCacheKey, string(raw), dashboardCacheTTL)
		}
	}
	return &stats, nil
}
