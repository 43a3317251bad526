package entities

import "time"

// StanceConfidence grades the evidence behind a recorded party stance.
//
//	confirmed = taken from the party's official site or press release
//	inferred  = estimated from secondary reporting or voting patterns
//	unknown   = no ascertainable position
type StanceConfidence string

const (
	ConfidenceConfirmed StanceConfidence = "confirmed"
	ConfidenceInferred  StanceConfidence = "inferred"
	ConfidenceUnknown   StanceConfidence = "unknown"
)

// IsValid checks if the confidence level is valid
func (c StanceConfidence) IsValid() bool {
	switch c {
	case ConfidenceConfirmed, ConfidenceInferred, ConfidenceUnknown:
		return true
	}
	return false
}

// PartyWhipRecord is a party's declared or inferred official voting
// instruction for one bill, keyed by (bill, party). OfficialStance is nil
// when no position could be established.
type PartyWhipRecord struct {
	ID               uint             `json:"id" gorm:"primary_key;autoIncrement"`
	BillID           string           `json:"bill_id" gorm:"type:varchar(64);not null;uniqueIndex:idx_whip_bill_party"`
	BillName         string           `json:"bill_name" gorm:"type:text;not null"`
	Party            string           `json:"party" gorm:"type:varchar(128);not null;uniqueIndex:idx_whip_bill_party"`
	OfficialStance   *VoteChoice      `json:"official_stance" gorm:"type:varchar(8)"`
	StanceSource     *string          `json:"stance_source" gorm:"type:varchar(500)"` // citation URL backing the stance
	StanceConfidence StanceConfidence `json:"stance_confidence" gorm:"type:varchar(16);not null;default:'unknown'"`
	UpdatedAt        time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (PartyWhipRecord) TableName() string {
	return "party_whip_records"
}

// WhipDeviation is a derived record of a member voting against their
// party's stance. Computed on demand, never stored as ground truth.
type WhipDeviation struct {
	MemberID         string           `json:"member_id"`
	MemberName       string           `json:"member_name"`
	Party            string           `json:"party"`
	BillID           string           `json:"bill_id"`
	BillName         string           `json:"bill_name"`
	PartyStance      VoteChoice       `json:"party_stance"`
	ActualVote       VoteChoice       `json:"actual_vote"`
	Date             time.Time        `json:"date"`
	StanceConfidence StanceConfidence `json:"stance_confidence"`
}

// IntegrityFault flags an invariant violation found while computing derived
// data. Faults are surfaced for manual correction and never abort a run.
type IntegrityFault struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
	Detail   string `json:"detail"`
}

// Integrity fault kinds
const (
	FaultConfirmedStanceWithoutSource = "confirmed_stance_without_source"
	FaultSessionCountExceedsSpeeches  = "session_count_exceeds_speech_count"
	FaultUnrecognizedCommitteeRole    = "unrecognized_committee_role"
)
