package entities

import "time"

// Plenary is the committee label used for plenary-sitting speeches.
const Plenary = "本会議"

// Speech is a single recorded utterance by a member. Immutable once
// ingested by the collector.
type Speech struct {
	ID       string `json:"id" gorm:"type:varchar(64);primary_key"`
	MemberID string `json:"member_id" gorm:"type:varchar(64);not null;index"`

	// SpokenAt is nil when the source record carries no date.
	SpokenAt *time.Time `json:"spoken_at,omitempty" gorm:"type:timestamp;index"`

	// Committee is the committee name, or Plenary for plenary sittings.
	Committee     string `json:"committee" gorm:"type:varchar(255);not null;default:''"`
	SessionNumber int    `json:"session_number" gorm:"default:0;not null"`
	House         House  `json:"house" gorm:"type:varchar(16);not null"`
	URL           string `json:"url" gorm:"type:varchar(500);not null;default:''"`

	// IsProcedural marks remarks recorded under a presiding role
	// (chair/speaker). Procedural speech never counts toward activity.
	IsProcedural bool `json:"is_procedural" gorm:"default:false;not null;index"`
}

// TableName overrides the table name
func (Speech) TableName() string {
	return "speeches"
}

// DateKey returns the calendar date used for session grouping, empty when
// the speech carries no date.
func (s *Speech) DateKey() string {
	if s.SpokenAt == nil {
		return ""
	}
	return s.SpokenAt.Format("2006-01-02")
}
