package entities

import (
	"time"
)

// House identifies one of the two chambers of the Diet
type House string

const (
	HouseRepresentatives House = "衆議院"
	HouseCouncillors     House = "参議院"
)

// IsValid checks if the house value is valid
func (h House) IsValid() bool {
	switch h {
	case HouseRepresentatives, HouseCouncillors:
		return true
	}
	return false
}

// PublishesVoteRecords reports whether the chamber publishes individual
// vote records. Only the House of Councillors does; metrics derived from
// vote presence are not applicable for the other chamber.
func (h House) PublishesVoteRecords() bool {
	return h == HouseCouncillors
}

// Member represents a Diet member.
//
// SpeechCount, SessionCount and QuestionCount are cached counters written
// back by the aggregation pipeline for fast listing pages. They are fully
// recomputed on each run, never patched incrementally.
type Member struct {
	ID          string  `json:"id" gorm:"type:varchar(64);primary_key"`
	Name        string  `json:"name" gorm:"type:varchar(255);not null"`
	NameReading string  `json:"name_reading" gorm:"type:varchar(255);not null;default:''"`
	LegalName   *string `json:"legal_name,omitempty" gorm:"type:varchar(255)"` // recorded only when it differs from the display name
	Nationality *string `json:"nationality,omitempty" gorm:"type:varchar(64)"` // recorded only when non-default
	Party       string  `json:"party" gorm:"type:varchar(128);not null;index"`
	House       House   `json:"house" gorm:"type:varchar(16);not null;index"`
	District    string  `json:"district" gorm:"type:varchar(128);not null;default:''"`
	Prefecture  string  `json:"prefecture" gorm:"type:varchar(64);not null;default:''"`

	// Terms counts election wins in the member's current chamber only.
	// Cross-chamber veterans are understated. Known limitation of the
	// source registry, kept as-is.
	Terms int `json:"terms" gorm:"default:0;not null"`

	CabinetPost *string `json:"cabinet_post,omitempty" gorm:"type:varchar(255)"`
	IsActive    bool    `json:"is_active" gorm:"default:true;not null;index"`

	// Cached derived counters. Invariant: SessionCount <= SpeechCount.
	SpeechCount   int `json:"speech_count" gorm:"default:0;not null"`
	SessionCount  int `json:"session_count" gorm:"default:0;not null"`
	QuestionCount int `json:"question_count" gorm:"default:0;not null"`

	SourceURL *string   `json:"source_url,omitempty" gorm:"type:varchar(500)"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Member) TableName() string {
	return "members"
}
