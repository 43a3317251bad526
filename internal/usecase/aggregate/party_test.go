package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

func member(id, party string, sessions, questions, speeches int) *entities.Member {
	return &entities.Member{
		ID:            id,
		Name:          "議員" + id,
		NameReading:   "ぎいん" + id,
		Party:         party,
		House:         entities.HouseCouncillors,
		IsActive:      true,
		SpeechCount:   speeches,
		SessionCount:  sessions,
		QuestionCount: questions,
	}
}

func TestRollupParties(t *testing.T) {
	members := []*entities.Member{
		member("a", "自由民主党", 10, 2, 20),
		member("b", "自由民主党", 5, 1, 8),
		member("c", "自由民主党", 0, 0, 0),
		member("d", "立憲民主党", 7, 4, 12),
	}
	scores := map[string]int{"a": 80, "b": 60, "c": 40, "d": 55}

	result := RollupParties(members, scores)
	require.Len(t, result, 2)

	assert.Equal(t, "立憲民主党", result[0].Party)
	ldp := result[1]
	assert.Equal(t, "自由民主党", ldp.Party)
	assert.Equal(t, 3, ldp.MemberCount)
	assert.Equal(t, 15, ldp.TotalSessions)
	assert.Equal(t, 3, ldp.TotalQuestions)
	assert.Equal(t, 180, ldp.TotalScore)
	assert.Equal(t, 60, ldp.ScorePerMember)
}

func TestRollupParties_InactiveExcluded(t *testing.T) {
	retired := member("x", "無所属", 30, 10, 60)
	retired.IsActive = false

	result := RollupParties([]*entities.Member{retired}, map[string]int{"x": 90})
	assert.Empty(t, result)
}

func TestRollupParties_MissingScoreCountsZero(t *testing.T) {
	members := []*entities.Member{
		member("a", "公明党", 3, 0, 5),
		member("b", "公明党", 1, 0, 2),
	}

	result := RollupParties(members, map[string]int{"a": 50})
	require.Len(t, result, 1)
	assert.Equal(t, 50, result[0].TotalScore)
	assert.Equal(t, 25, result[0].ScorePerMember)
}

func TestRankMembers_ExcludesZeroByDefault(t *testing.T) {
	members := []*entities.Member{
		member("a", "p", 0, 5, 0),
		member("b", "p", 3, 0, 6),
		member("c", "p", 9, 1, 18),
	}

	ranked := RankMembers(members, RankBySessions, false, 0)
	require.Len(t, ranked, 2)
	assert.Equal(t, "c", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)

	all := RankMembers(members, RankBySessions, true, 0)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[2].ID)
}

func TestRankMembers_MetricAndLimit(t *testing.T) {
	members := []*entities.Member{
		member("a", "p", 1, 7, 2),
		member("b", "p", 2, 3, 4),
		member("c", "p", 3, 9, 6),
	}

	ranked := RankMembers(members, RankByQuestions, false, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "c", ranked[0].ID)
	assert.Equal(t, "a", ranked[1].ID)
}

func TestRankMembers_StableTieBreak(t *testing.T) {
	first := member("z1", "p", 4, 0, 8)
	first.NameReading = "あおき"
	second := member("a1", "p", 4, 0, 8)
	second.NameReading = "やまだ"

	ranked := RankMembers([]*entities.Member{second, first}, RankBySessions, false, 0)
	require.Len(t, ranked, 2)
	assert.Equal(t, "z1", ranked[0].ID)
	assert.Equal(t, "a1", ranked[1].ID)
}

func TestBuildDashboardStats(t *testing.T) {
	members := []*entities.Member{
		member("a", "自由民主党", 2, 1, 4),
		member("b", "自由民主党", 1, 0, 2),
		member("c", "立憲民主党", 3, 2, 6),
		member("d", "無所属", 0, 0, 0),
	}

	stats := BuildDashboardStats(members)
	assert.Equal(t, 4, stats.TotalMembers)
	assert.Equal(t, 12, stats.TotalSpeeches)
	assert.Equal(t, 3, stats.TotalQuestions)

	require.Len(t, stats.PartyBreakdown, 3)
	assert.Equal(t, PartyBreakdown{Party: "自由民主党", Count: 2}, stats.PartyBreakdown[0])
	assert.Equal(t, PartyBreakdown{Party: "無所属", Count: 1}, stats.PartyBreakdown[1])
	assert.Equal(t, PartyBreakdown{Party: "立憲民主党", Count: 1}, stats.PartyBreakdown[2])
}

func TestCountCommitteeRoles_OpenEnum(t *testing.T) {
	memberships := []*entities.CommitteeMembership{
		{Committee: "予算委員会", Role: entities.RoleChair},
		{Committee: "法務委員会", Role: entities.RoleDirector},
		{Committee: "内閣委員会", Role: entities.RoleMember},
		{Committee: "新設委員会", Role: entities.CommitteeRole("オブザーバー")},
	}

	var unknown []*entities.CommitteeMembership
	chair, exec := CountCommitteeRoles(memberships, func(m *entities.CommitteeMembership) {
		unknown = append(unknown, m)
	})

	assert.Equal(t, 1, chair)
	assert.Equal(t, 1, exec)
	require.Len(t, unknown, 1)
	assert.Equal(t, "新設委員会", unknown[0].Committee)
}
