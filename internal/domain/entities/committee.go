package entities

// CommitteeRole is a member's role within a committee. The role taxonomy in
// the source registries is not exhaustive, so this is an open enum: values
// outside the known sets are kept and surfaced, never dropped.
type CommitteeRole string

const (
	RoleChair     CommitteeRole = "委員長"
	RoleChairAlt  CommitteeRole = "会長" // research-commission equivalent of a chair
	RoleDirector  CommitteeRole = "理事"
	RoleSecretary CommitteeRole = "幹事"
	RoleMember    CommitteeRole = "委員"
)

// IsChair reports whether the role is a chair-equivalent
func (r CommitteeRole) IsChair() bool {
	return r == RoleChair || r == RoleChairAlt
}

// IsExec reports whether the role is a vice-chair/secretary equivalent
func (r CommitteeRole) IsExec() bool {
	return r == RoleDirector || r == RoleSecretary
}

// IsKnown reports whether the role belongs to the recognized taxonomy
func (r CommitteeRole) IsKnown() bool {
	switch r {
	case RoleChair, RoleChairAlt, RoleDirector, RoleSecretary, RoleMember:
		return true
	}
	return false
}

// CommitteeMembership links a member to a committee. Current-state only;
// the collector replaces rows on each sync, no historical versioning.
type CommitteeMembership struct {
	ID        uint          `json:"id" gorm:"primary_key;autoIncrement"`
	MemberID  string        `json:"member_id" gorm:"type:varchar(64);not null;index"`
	Name      string        `json:"name" gorm:"type:varchar(255);not null;default:''"` // member display name as listed by the committee page
	Committee string        `json:"committee" gorm:"type:varchar(255);not null"`
	Role      CommitteeRole `json:"role" gorm:"type:varchar(64);not null;default:'委員'"`
	House     House         `json:"house" gorm:"type:varchar(16);not null"`
}

// TableName overrides the table name
func (CommitteeMembership) TableName() string {
	return "committee_members"
}
