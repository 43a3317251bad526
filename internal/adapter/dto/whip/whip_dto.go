package whip

import "time"

// DeviationsRequest carries the deviation feed filters
type DeviationsRequest struct {
	MemberID       string `query:"memberId"`
	Party          string `query:"party"`
	BillID         string `query:"billId"`
	IncludeUnknown bool   `query:"includeUnknown"`
}

// BackfillRequest names the bill whose whip records should be inferred
type BackfillRequest struct {
	BillID string `json:"bill_id" query:"billId"`
}

// BackfillResponse reports how many records the inference wrote
type BackfillResponse struct {
	BillID         string `json:"bill_id"`
	RecordsWritten int    `json:"records_written"`
}

// DeviationResponse is one reported whip deviation
type DeviationResponse struct {
	MemberID         string    `json:"member_id"`
	MemberName       string    `json:"member_name"`
	Party            string    `json:"party"`
	BillID           string    `json:"bill_id"`
	BillName         string    `json:"bill_name"`
	PartyStance      string    `json:"party_stance"`
	ActualVote       string    `json:"actual_vote"`
	Date             time.Time `json:"date"`
	StanceConfidence string    `json:"stance_confidence"`
}
