package member

import "time"

// ListMembersRequest carries the member listing filters
type ListMembersRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=active former all"`
	Party  string `query:"party"`
	House  string `query:"house" validate:"omitempty,oneof=衆議院 参議院"`
}

// RankingRequest carries ranking parameters
type RankingRequest struct {
	Metric      string `query:"metric" validate:"omitempty,oneof=session question speech"`
	IncludeZero bool   `query:"include_zero"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=2000"`
}

// MemberResponse is the listing view of one member
type MemberResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameReading   string  `json:"name_reading"`
	Party         string  `json:"party"`
	PartyColor    string  `json:"party_color"`
	House         string  `json:"house"`
	District      string  `json:"district"`
	Prefecture    string  `json:"prefecture"`
	Terms         int     `json:"terms"`
	CabinetPost   *string `json:"cabinet_post,omitempty"`
	IsActive      bool    `json:"is_active"`
	SpeechCount   int     `json:"speech_count"`
	SessionCount  int     `json:"session_count"`
	QuestionCount int     `json:"question_count"`
}

// SpeechResponse is one utterance inside a session
type SpeechResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionResponse is one grouped sitting
type SessionResponse struct {
	Date      string           `json:"date"`
	Committee string           `json:"committee"`
	Speeches  []SpeechResponse `json:"speeches"`
}

// QuestionResponse is one written question
type QuestionResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Session     int        `json:"session"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	AnsweredAt  *time.Time `json:"answered_at,omitempty"`
	URL         string     `json:"url"`
}

// VoteResponse is one recorded vote
type VoteResponse struct {
	BillID    string    `json:"bill_id"`
	BillTitle string    `json:"bill_title"`
	VoteDate  time.Time `json:"vote_date"`
	Choice    string    `json:"choice"`
}

// BillResponse is one sponsored bill
type BillResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	Status      string     `json:"status"`
}

// CommitteeResponse is one committee membership
type CommitteeResponse struct {
	Committee string `json:"committee"`
	Role      string `json:"role"`
}

// CountersResponse is the live counter set for one member, committee role
// counts included
type CountersResponse struct {
	SpeechCount         int `json:"speech_count"`
	SessionCount        int `json:"session_count"`
	QuestionCount       int `json:"question_count"`
	CommitteeChairCount int `json:"committee_chair_count"`
	CommitteeExecCount  int `json:"committee_exec_count"`
}

// MemberDetailResponse is the full member page payload
type MemberDetailResponse struct {
	Member     *MemberResponse     `json:"member"`
	Counters   *CountersResponse   `json:"counters"`
	Sessions   []SessionResponse   `json:"sessions"`
	Questions  []QuestionResponse  `json:"questions"`
	Votes      []VoteResponse      `json:"votes"`
	Bills      []BillResponse      `json:"bills"`
	Committees []CommitteeResponse `json:"committees"`
	Score      *ScoreResponse      `json:"score,omitempty"`
}

// ScoreResponse is the activity score payload
type ScoreResponse struct {
	MemberID     string    `json:"member_id"`
	Attendance   *int      `json:"attendance"`
	Speeches     *int      `json:"speeches"`
	Questions    *int      `json:"questions"`
	Bills        *int      `json:"bills"`
	Committee    *int      `json:"committee"`
	Total        int       `json:"total"`
	Label        string    `json:"label"`
	LabelColor   string    `json:"label_color"`
	Alert        bool      `json:"alert"`
	CalculatedAt time.Time `json:"calculated_at"`
}
