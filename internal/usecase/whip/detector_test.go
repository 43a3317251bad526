package whip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

func stance(c entities.VoteChoice) *entities.VoteChoice {
	return &c
}

func source(url string) *string {
	return &url
}

func vote(memberID, billID string, choice entities.VoteChoice, date time.Time) *entities.Vote {
	return &entities.Vote{
		ID:       memberID + ":" + billID,
		MemberID: memberID,
		BillID:   billID,
		Choice:   choice,
		VoteDate: date,
		House:    entities.HouseCouncillors,
	}
}

func lookupFixture(t *testing.T) func(string) (string, string, bool) {
	t.Helper()
	members := map[string][2]string{
		"m1": {"山田太郎", "自由民主党"},
		"m2": {"佐藤花子", "立憲民主党"},
	}
	return func(id string) (string, string, bool) {
		m, ok := members[id]
		return m[0], m[1], ok
	}
}

func TestDetect_ReportsVoteAgainstConfirmedStance(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	votes := []*entities.Vote{vote("m1", "b1", entities.VoteNo, date)}
	records := []*entities.PartyWhipRecord{{
		BillID:           "b1",
		BillName:         "重要法案",
		Party:            "自由民主党",
		OfficialStance:   stance(entities.VoteYes),
		StanceSource:     source("https://example.jp/ldp/b1"),
		StanceConfidence: entities.ConfidenceConfirmed,
	}}

	result := Detect(votes, records, lookupFixture(t))
	require.Len(t, result.Deviations, 1)
	assert.Empty(t, result.Faults)

	d := result.Deviations[0]
	assert.Equal(t, "m1", d.MemberID)
	assert.Equal(t, "山田太郎", d.MemberName)
	assert.Equal(t, entities.VoteYes, d.PartyStance)
	assert.Equal(t, entities.VoteNo, d.ActualVote)
	assert.Equal(t, entities.ConfidenceConfirmed, d.StanceConfidence)
	assert.Equal(t, "重要法案", d.BillName)
}

func TestDetect_NilStanceNeverDeviates(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	votes := []*entities.Vote{vote("m1", "b1", entities.VoteNo, date)}
	records := []*entities.PartyWhipRecord{{
		BillID:           "b1",
		Party:            "自由民主党",
		OfficialStance:   nil,
		StanceConfidence: entities.ConfidenceUnknown,
	}}

	result := Detect(votes, records, lookupFixture(t))
	assert.Empty(t, result.Deviations)
}

func TestDetect_AbsentIsNotADeviation(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	votes := []*entities.Vote{
		vote("m1", "b1", entities.VoteAbsent, date),
		vote("m2", "b1", entities.VoteAbstain, date),
	}
	records := []*entities.PartyWhipRecord{
		{
			BillID:           "b1",
			Party:            "自由民主党",
			OfficialStance:   stance(entities.VoteYes),
			StanceSource:     source("https://example.jp/ldp/b1"),
			StanceConfidence: entities.ConfidenceConfirmed,
		},
		{
			BillID:           "b1",
			Party:            "立憲民主党",
			OfficialStance:   stance(entities.VoteYes),
			StanceConfidence: entities.ConfidenceInferred,
		},
	}

	result := Detect(votes, records, lookupFixture(t))
	require.Len(t, result.Deviations, 1)
	assert.Equal(t, "m2", result.Deviations[0].MemberID)
	assert.Equal(t, entities.VoteAbstain, result.Deviations[0].ActualVote)
}

func TestDetect_ConfirmedWithoutSourceIsAFault(t *testing.T) {
	records := []*entities.PartyWhipRecord{{
		BillID:           "b9",
		Party:            "自由民主党",
		OfficialStance:   stance(entities.VoteYes),
		StanceConfidence: entities.ConfidenceConfirmed,
	}}

	result := Detect(nil, records, lookupFixture(t))
	require.Len(t, result.Faults, 1)
	assert.Equal(t, entities.FaultConfirmedStanceWithoutSource, result.Faults[0].Kind)
	assert.Equal(t, "b9:自由民主党", result.Faults[0].EntityID)
}

func TestDetect_OrderedByDateDescending(t *testing.T) {
	older := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	votes := []*entities.Vote{
		vote("m1", "b1", entities.VoteNo, older),
		vote("m1", "b2", entities.VoteNo, newer),
	}
	records := []*entities.PartyWhipRecord{
		{BillID: "b1", Party: "自由民主党", OfficialStance: stance(entities.VoteYes), StanceConfidence: entities.ConfidenceInferred},
		{BillID: "b2", Party: "自由民主党", OfficialStance: stance(entities.VoteYes), StanceConfidence: entities.ConfidenceInferred},
	}

	result := Detect(votes, records, lookupFixture(t))
	require.Len(t, result.Deviations, 2)
	assert.Equal(t, "b2", result.Deviations[0].BillID)
	assert.Equal(t, "b1", result.Deviations[1].BillID)
}

func TestFilterByConfidence(t *testing.T) {
	deviations := []entities.WhipDeviation{
		{BillID: "b1", StanceConfidence: entities.ConfidenceConfirmed},
		{BillID: "b2", StanceConfidence: entities.ConfidenceInferred},
		{BillID: "b3", StanceConfidence: entities.ConfidenceUnknown},
	}

	visible := FilterByConfidence(deviations, false)
	require.Len(t, visible, 2)
	assert.Equal(t, "b1", visible[0].BillID)
	assert.Equal(t, "b2", visible[1].BillID)

	audit := FilterByConfidence(deviations, true)
	assert.Len(t, audit, 3)
}

func TestInferStance(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("too few votes", func(t *testing.T) {
		votes := []*entities.Vote{
			vote("m1", "b1", entities.VoteYes, date),
			vote("m2", "b1", entities.VoteYes, date),
		}
		assert.Nil(t, InferStance(votes))
	})

	t.Run("unanimous yes", func(t *testing.T) {
		votes := []*entities.Vote{
			vote("m1", "b1", entities.VoteYes, date),
			vote("m2", "b1", entities.VoteYes, date),
			vote("m3", "b1", entities.VoteYes, date),
		}
		got := InferStance(votes)
		require.NotNil(t, got)
		assert.Equal(t, entities.VoteYes, *got)
	})

	t.Run("four of five against", func(t *testing.T) {
		votes := []*entities.Vote{
			vote("m1", "b1", entities.VoteNo, date),
			vote("m2", "b1", entities.VoteNo, date),
			vote("m3", "b1", entities.VoteNo, date),
			vote("m4", "b1", entities.VoteNo, date),
			vote("m5", "b1", entities.VoteYes, date),
		}
		got := InferStance(votes)
		require.NotNil(t, got)
		assert.Equal(t, entities.VoteNo, *got)
	})

	t.Run("split party", func(t *testing.T) {
		votes := []*entities.Vote{
			vote("m1", "b1", entities.VoteYes, date),
			vote("m2", "b1", entities.VoteYes, date),
			vote("m3", "b1", entities.VoteNo, date),
			vote("m4", "b1", entities.VoteNo, date),
		}
		assert.Nil(t, InferStance(votes))
	})

	t.Run("mostly absent", func(t *testing.T) {
		votes := []*entities.Vote{
			vote("m1", "b1", entities.VoteYes, date),
			vote("m2", "b1", entities.VoteAbsent, date),
			vote("m3", "b1", entities.VoteAbsent, date),
		}
		assert.Nil(t, InferStance(votes))
	})
}
