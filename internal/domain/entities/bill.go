package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Bill is a bill before the Diet. SubmitterIDs holds the member ids of
// sponsors for member-sponsored bills (議員立法), stored as a JSONB array.
type Bill struct {
	ID            string         `json:"id" gorm:"type:varchar(64);primary_key"`
	Title         string         `json:"title" gorm:"type:text;not null"`
	SubmitterIDs  datatypes.JSON `json:"submitter_ids" gorm:"type:jsonb;default:'[]'"`
	SubmittedAt   *time.Time     `json:"submitted_at,omitempty" gorm:"type:timestamp"`
	SessionNumber int            `json:"session_number" gorm:"not null"`
	Status        string         `json:"status" gorm:"type:varchar(64);not null;default:''"`
	House         House          `json:"house" gorm:"type:varchar(16);not null"`
}

// TableName overrides the table name
func (Bill) TableName() string {
	return "bills"
}

// Submitters unmarshals the sponsor id array. A malformed column yields an
// empty list rather than an error; sponsorship is optional data.
func (b *Bill) Submitters() []string {
	var ids []string
	if err := json.Unmarshal(b.SubmitterIDs, &ids); err != nil {
		return nil
	}
	return ids
}

// SubmittedBy reports whether the given member sponsored this bill
func (b *Bill) SubmittedBy(memberID string) bool {
	for _, id := range b.Submitters() {
		if id == memberID {
			return true
		}
	}
	return false
}

// NewSubmitterIDs builds the JSONB sponsor array from member ids
func NewSubmitterIDs(memberIDs []string) datatypes.JSON {
	if memberIDs == nil {
		memberIDs = []string{}
	}
	raw, _ := json.Marshal(memberIDs)
	return raw
}
