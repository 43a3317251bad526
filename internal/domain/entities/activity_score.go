package entities

import (
	"time"

	"github.com/google/uuid"
)

// Sub-score maxima. They sum to 100, so Total is bounded without further
// clamping.
const (
	MaxAttendanceScore = 30
	MaxSpeechScore     = 30
	MaxQuestionScore   = 15
	MaxBillScore       = 15
	MaxCommitteeScore  = 10
)

// ActivityScore is the composite 0-100 activity score for one member.
//
// Sub-scores are pointers so that "input unavailable" (nil) stays distinct
// from a genuine zero all the way to the JSON the UI reads. A nil sub-score
// contributes 0 to Total. Rows are recomputed wholesale: each run fully
// overwrites the row, including CalculatedAt.
type ActivityScore struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MemberID string    `json:"member_id" gorm:"type:varchar(64);uniqueIndex;not null"`

	Attendance *int `json:"attendance" gorm:"type:int"`
	Speeches   *int `json:"speeches" gorm:"type:int"`
	Questions  *int `json:"questions" gorm:"type:int"`
	Bills      *int `json:"bills" gorm:"type:int"`
	Committee  *int `json:"committee" gorm:"type:int"`

	Total        int       `json:"total" gorm:"not null"`
	CalculatedAt time.Time `json:"calculated_at" gorm:"type:timestamp;not null"`
}

// TableName overrides the table name
func (ActivityScore) TableName() string {
	return "activity_scores"
}

// SubScoreSum returns the sum of the sub-scores, treating nil as 0
func (s *ActivityScore) SubScoreSum() int {
	sum := 0
	for _, p := range []*int{s.Attendance, s.Speeches, s.Questions, s.Bills, s.Committee} {
		if p != nil {
			sum += *p
		}
	}
	return sum
}
