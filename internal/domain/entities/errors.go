package entities

import "errors"

// Domain errors
var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrBillNotFound    = errors.New("bill not found")
	ErrScoreNotFound   = errors.New("activity score not found")
	ErrSettingNotFound = errors.New("site setting not found")
)
