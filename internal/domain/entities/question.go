package entities

import "time"

// Question is a written question (質問主意書) submitted to the executive.
// Both chambers publish these, through different registries; the collector
// normalizes them into one table tagged by house.
type Question struct {
	ID          string     `json:"id" gorm:"type:varchar(64);primary_key"`
	MemberID    string     `json:"member_id" gorm:"type:varchar(64);not null;index"`
	Session     int        `json:"session" gorm:"not null"` // legislative session number
	Title       string     `json:"title" gorm:"type:text;not null"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty" gorm:"type:timestamp"`
	AnsweredAt  *time.Time `json:"answered_at,omitempty" gorm:"type:timestamp"`
	House       House      `json:"house" gorm:"type:varchar(16);not null;index"`
	URL         string     `json:"url" gorm:"type:varchar(500);not null;default:''"`
}

// TableName overrides the table name
func (Question) TableName() string {
	return "questions"
}
