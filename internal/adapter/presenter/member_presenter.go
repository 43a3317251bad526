package presenter

import (
	memberDTO "github.com/giinwatch/giin-watch/internal/adapter/dto/member"
	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
	"github.com/giinwatch/giin-watch/internal/usecase/session"
	"github.com/giinwatch/giin-watch/pkg/parties"
)

// ToMemberResponse converts a Member entity to MemberResponse DTO
func ToMemberResponse(m *entities.Member) *memberDTO.MemberResponse {
	if m == nil {
		return nil
	}

	return &memberDTO.MemberResponse{
		ID:            m.ID,
		Name:          m.Name,
		NameReading:   m.NameReading,
		Party:         m.Party,
		PartyColor:    parties.Color(m.Party),
		House:         string(m.House),
		District:      m.District,
		Prefecture:    m.Prefecture,
		Terms:         m.Terms,
		CabinetPost:   m.CabinetPost,
		IsActive:      m.IsActive,
		SpeechCount:   m.SpeechCount,
		SessionCount:  m.SessionCount,
		QuestionCount: m.QuestionCount,
	}
}

// ToMemberResponses converts a member list
func ToMemberResponses(members []*entities.Member) []*memberDTO.MemberResponse {
	responses := make([]*memberDTO.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, ToMemberResponse(m))
	}
	return responses
}

// ToCountersResponse converts a member's live counter set
func ToCountersResponse(c *aggregate.MemberCounters) *memberDTO.CountersResponse {
	if c == nil {
		return nil
	}
	return &memberDTO.CountersResponse{
		SpeechCount:         c.SpeechCount,
		SessionCount:        c.SessionCount,
		QuestionCount:       c.QuestionCount,
		CommitteeChairCount: c.CommitteeChairCount,
		CommitteeExecCount:  c.CommitteeExecCount,
	}
}

// ToSessionResponses converts grouped sessions
func ToSessionResponses(sessions []session.Session) []memberDTO.SessionResponse {
	responses := make([]memberDTO.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		speeches := make([]memberDTO.SpeechResponse, 0, len(s.Speeches))
		for _, sp := range s.Speeches {
			speeches = append(speeches, memberDTO.SpeechResponse{
				ID:  sp.ID,
				URL: sp.URL,
			})
		}
		responses = append(responses, memberDTO.SessionResponse{
			Date:      s.Date,
			Committee: s.Committee,
			Speeches:  speeches,
		})
	}
	return responses
}

// ToQuestionResponses converts written questions
func ToQuestionResponses(questions []*entities.Question) []memberDTO.QuestionResponse {
	responses := make([]memberDTO.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, memberDTO.QuestionResponse{
			ID:          q.ID,
			Title:       q.Title,
			Session:     q.Session,
			SubmittedAt: q.SubmittedAt,
			AnsweredAt:  q.AnsweredAt,
			URL:         q.URL,
		})
	}
	return responses
}

// ToVoteResponses converts vote records
func ToVoteResponses(votes []*entities.Vote) []memberDTO.VoteResponse {
	responses := make([]memberDTO.VoteResponse, 0, len(votes))
	for _, v := range votes {
		responses = append(responses, memberDTO.VoteResponse{
			BillID:    v.BillID,
			BillTitle: v.BillTitle,
			VoteDate:  v.VoteDate,
			Choice:    string(v.Choice),
		})
	}
	return responses
}

// ToBillResponses converts sponsored bills
func ToBillResponses(bills []*entities.Bill) []memberDTO.BillResponse {
	responses := make([]memberDTO.BillResponse, 0, len(bills))
	for _, b := range bills {
		responses = append(responses, memberDTO.BillResponse{
			ID:          b.ID,
			Title:       b.Title,
			SubmittedAt: b.SubmittedAt,
			Status:      b.Status,
		})
	}
	return responses
}

// ToCommitteeResponses converts committee memberships
func ToCommitteeResponses(memberships []*entities.CommitteeMembership) []memberDTO.CommitteeResponse {
	responses := make([]memberDTO.CommitteeResponse, 0, len(memberships))
	for _, cm := range memberships {
		responses = append(responses, memberDTO.CommitteeResponse{
			Committee: cm.Committee,
			Role:      string(cm.Role),
		})
	}
	return responses
}
