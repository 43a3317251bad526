package presenter

import (
	partyDTO "github.com/giinwatch/giin-watch/internal/adapter/dto/party"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
	"github.com/giinwatch/giin-watch/pkg/parties"
)

// ToPartyStatsResponse converts one party roll-up, attaching the party's
// display color the same way score responses carry their label color
func ToPartyStatsResponse(s aggregate.PartyStats) partyDTO.StatsResponse {
	return partyDTO.StatsResponse{
		Party:          s.Party,
		Color:          parties.Color(s.Party),
		MemberCount:    s.MemberCount,
		TotalSessions:  s.TotalSessions,
		TotalQuestions: s.TotalQuestions,
		TotalScore:     s.TotalScore,
		ScorePerMember: s.ScorePerMember,
	}
}

// ToPartyStatsResponses converts a party roll-up list
func ToPartyStatsResponses(stats []aggregate.PartyStats) []partyDTO.StatsResponse {
	responses := make([]partyDTO.StatsResponse, 0, len(stats))
	for _, s := range stats {
		responses = append(responses, ToPartyStatsResponse(s))
	}
	return responses
}

// ToDashboardResponse converts the front-page summary
func ToDashboardResponse(stats *aggregate.DashboardStats) *partyDTO.DashboardResponse {
	if stats == nil {
		return nil
	}

	breakdown := make([]partyDTO.BreakdownResponse, 0, len(stats.PartyBreakdown))
	for _, b := range stats.PartyBreakdown {
		breakdown = append(breakdown, partyDTO.BreakdownResponse{
			Party: b.Party,
			Color: parties.Color(b.Party),
			Count: b.Count,
		})
	}
	return &partyDTO.DashboardResponse{
		TotalMembers:   stats.TotalMembers,
		TotalSpeeches:  stats.TotalSpeeches,
		TotalQuestions: stats.TotalQuestions,
		PartyBreakdown: breakdown,
	}
}
