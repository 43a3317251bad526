package presenter

import (
	memberDTO "github.com/giinwatch/giin-watch/internal/adapter/dto/member"
	whipDTO "github.com/giinwatch/giin-watch/internal/adapter/dto/whip"
	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/usecase/scoring"
)

// ToScoreResponse converts an ActivityScore to its DTO, attaching the
// presentation label for the total
func ToScoreResponse(score *entities.ActivityScore) *memberDTO.ScoreResponse {
	if score == nil {
		return nil
	}

	label := scoring.ScoreLabel(score.Total)
	return &memberDTO.ScoreResponse{
		MemberID:     score.MemberID,
		Attendance:   score.Attendance,
		Speeches:     score.Speeches,
		Questions:    score.Questions,
		Bills:        score.Bills,
		Committee:    score.Committee,
		Total:        score.Total,
		Label:        label.Text,
		LabelColor:   label.Color,
		Alert:        label.Alert,
		CalculatedAt: score.CalculatedAt,
	}
}

// ToDeviationResponses converts whip deviations
func ToDeviationResponses(deviations []entities.WhipDeviation) []whipDTO.DeviationResponse {
	responses := make([]whipDTO.DeviationResponse, 0, len(deviations))
	for _, d := range deviations {
		responses = append(responses, whipDTO.DeviationResponse{
			MemberID:         d.MemberID,
			MemberName:       d.MemberName,
			Party:            d.Party,
			BillID:           d.BillID,
			BillName:         d.BillName,
			PartyStance:      string(d.PartyStance),
			ActualVote:       string(d.ActualVote),
			Date:             d.Date,
			StanceConfidence: string(d.StanceConfidence),
		})
	}
	return responses
}
