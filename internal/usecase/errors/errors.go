package errors

import "errors"

// Pipeline errors
var (
	ErrRecountFailed  = errors.New("counter recount failed")
	ErrScoringFailed  = errors.New("score recomputation failed")
	ErrSnapshotFailed = errors.New("snapshot read exhausted retries")
	ErrRecalcInFlight = errors.New("recalculation already running")
)
