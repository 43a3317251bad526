package entities

import "time"

// SiteSetting is an operator-managed key/value toggle (maintenance banner,
// election safe mode, etc.)
type SiteSetting struct {
	Key   string  `json:"key" gorm:"type:varchar(128);primary_key"`
	Value *string `json:"value" gorm:"type:text"`
}

// TableName overrides the table name
func (SiteSetting) TableName() string {
	return "site_settings"
}

// Well-known setting keys
const (
	SettingElectionSafeMode  = "election_safe_mode"
	SettingMaintenanceBanner = "maintenance_banner"
)

// ChangelogEntry is one public changelog line
type ChangelogEntry struct {
	ID          uint      `json:"id" gorm:"primary_key;autoIncrement"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name
func (ChangelogEntry) TableName() string {
	return "changelog"
}
