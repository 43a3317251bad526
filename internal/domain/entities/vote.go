package entities

import "time"

// VoteChoice is a member's recorded choice on a bill vote
type VoteChoice string

const (
	VoteYes     VoteChoice = "賛成"
	VoteNo      VoteChoice = "反対"
	VoteAbstain VoteChoice = "棄権"
	VoteAbsent  VoteChoice = "欠席"
)

// IsValid checks if the vote choice is valid
func (v VoteChoice) IsValid() bool {
	switch v {
	case VoteYes, VoteNo, VoteAbstain, VoteAbsent:
		return true
	}
	return false
}

// Vote is one member's vote on one bill. Individual vote records are only
// published by the House of Councillors, so the table is populated for that
// chamber only.
type Vote struct {
	ID            string     `json:"id" gorm:"type:varchar(64);primary_key"`
	MemberID      string     `json:"member_id" gorm:"type:varchar(64);not null;index"`
	BillID        string     `json:"bill_id" gorm:"type:varchar(64);not null;index"`
	BillTitle     string     `json:"bill_title" gorm:"type:text;not null"`
	VoteDate      time.Time  `json:"vote_date" gorm:"type:timestamp;not null;index"`
	Choice        VoteChoice `json:"choice" gorm:"type:varchar(8);not null"`
	SessionNumber int        `json:"session_number" gorm:"not null"`
	House         House      `json:"house" gorm:"type:varchar(16);not null"`
}

// TableName overrides the table name
func (Vote) TableName() string {
	return "votes"
}
