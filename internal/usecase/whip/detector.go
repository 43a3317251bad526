package whip

import (
	"sort"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
)

// Stance inference thresholds. A party position is only inferred from
// voting behavior when enough of the party voted and they voted together.
const (
	inferMinVotes  = 3
	inferAgreement = 0.8
)

// Result holds detected deviations together with the integrity faults
// found while scanning the whip records
type Result struct {
	Deviations []entities.WhipDeviation
	Faults     []entities.IntegrityFault
}

type whipKey struct {
	billID string
	party  string
}

// Detect joins votes against whip records keyed by (bill, party) and
// reports every vote cast against the party's stance.
//
// An absent member took no position, so 欠席 is never a deviation. 棄権 is:
// abstaining despite an instruction is a refusal to follow it. Records with
// a nil stance produce no deviations regardless of the vote.
//
// Confidence filtering is left to the caller; Detect reports everything so
// completeness audits see unknown-confidence deviations too.
func Detect(votes []*entities.Vote, records []*entities.PartyWhipRecord, memberOf func(memberID string) (name, party string, ok bool)) Result {
	byKey := make(map[whipKey]*entities.PartyWhipRecord, len(records))
	var result Result
	for _, rec := range records {
		byKey[whipKey{rec.BillID, rec.Party}] = rec
		if fault, ok := checkRecordIntegrity(rec); ok {
			result.Faults = append(result.Faults, fault)
		}
	}

	for _, vote := range votes {
		if vote.Choice == entities.VoteAbsent {
			continue
		}
		name, party, ok := memberOf(vote.MemberID)
		if !ok {
			continue
		}
		rec := byKey[whipKey{vote.BillID, party}]
		if rec == nil || rec.OfficialStance == nil {
			continue
		}
		if vote.Choice == *rec.OfficialStance {
			continue
		}
		result.Deviations = append(result.Deviations, entities.WhipDeviation{
			MemberID:         vote.MemberID,
			MemberName:       name,
			Party:            party,
			BillID:           vote.BillID,
			BillName:         rec.BillName,
			PartyStance:      *rec.OfficialStance,
			ActualVote:       vote.Choice,
			Date:             vote.VoteDate,
			StanceConfidence: rec.StanceConfidence,
		})
	}

	sort.SliceStable(result.Deviations, func(i, j int) bool {
		a, b := result.Deviations[i], result.Deviations[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.BillID != b.BillID {
			return a.BillID < b.BillID
		}
		return a.MemberID < b.MemberID
	})
	return result
}

// checkRecordIntegrity flags a confirmed stance carrying no citation.
// Confirmed means "we can point at the party's own statement"; without a
// source URL the record cannot back that claim.
func checkRecordIntegrity(rec *entities.PartyWhipRecord) (entities.IntegrityFault, bool) {
	if rec.StanceConfidence != entities.ConfidenceConfirmed {
		return entities.IntegrityFault{}, false
	}
	if rec.StanceSource != nil && *rec.StanceSource != "" {
		return entities.IntegrityFault{}, false
	}
	return entities.IntegrityFault{
		Kind:     entities.FaultConfirmedStanceWithoutSource,
		EntityID: rec.BillID + ":" + rec.Party,
		Detail:   "confirmed stance recorded without a citable source",
	}, true
}

// FilterByConfidence drops unknown-confidence deviations unless
// includeUnknown is set. Unknown means "no findable party position", which
// is not evidence of a deviation, so user-facing listings hide it.
func FilterByConfidence(deviations []entities.WhipDeviation, includeUnknown bool) []entities.WhipDeviation {
	if includeUnknown {
		return deviations
	}
	filtered := make([]entities.WhipDeviation, 0, len(deviations))
	for _, d := range deviations {
		if d.StanceConfidence != entities.ConfidenceUnknown {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// InferStance estimates a party's position on a bill from how its members
// actually voted. With at least three same-party votes and at least 80%
// agreement on 賛成 or 反対, that majority choice is the inferred stance.
// Abstentions and absences count toward the denominator: a party that
// mostly stayed away had no clear instruction.
func InferStance(votes []*entities.Vote) *entities.VoteChoice {
	if len(votes) < inferMinVotes {
		return nil
	}
	counts := make(map[entities.VoteChoice]int)
	for _, v := range votes {
		counts[v.Choice]++
	}
	total := float64(len(votes))
	for _, choice := range []entities.VoteChoice{entities.VoteYes, entities.VoteNo} {
		if float64(counts[choice])/total >= inferAgreement {
			c := choice
			return &c
		}
	}
	return nil
}
