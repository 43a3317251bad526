package party

// StatsResponse is the per-party roll-up view
type StatsResponse struct {
	Party          string `json:"party"`
	Color          string `json:"color"`
	MemberCount    int    `json:"member_count"`
	TotalSessions  int    `json:"total_sessions"`
	TotalQuestions int    `json:"total_questions"`
	TotalScore     int    `json:"total_score"`
	ScorePerMember int    `json:"score_per_member"`
}

// BreakdownResponse is one party's share of the active membership
type BreakdownResponse struct {
	Party string `json:"party"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// DashboardResponse is the front-page summary payload
type DashboardResponse struct {
	TotalMembers   int                 `json:"total_members"`
	TotalSpeeches  int                 `json:"total_speeches"`
	TotalQuestions int                 `json:"total_questions"`
	PartyBreakdown []BreakdownResponse `json:"party_breakdown"`
}
