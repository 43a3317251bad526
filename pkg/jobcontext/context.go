// Package jobcontext attaches run metadata to the context driving a
// recomputation, so every log line in a run can be correlated.
package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type keyContext string

const (
	keyRunID     keyContext = "run_id"
	keyTrigger   keyContext = "trigger"
	keyStartTime keyContext = "start_time"
)

// Run triggers
const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
	TriggerCLI    = "cli"
)

// RunMetadata identifies one pipeline run
type RunMetadata struct {
	RunID     uuid.UUID
	Trigger   string
	StartTime time.Time
}

// RunBegin stamps a fresh run id and trigger onto the context
func RunBegin(parent context.Context, trigger string) context.Context {
	ctx := context.WithValue(parent, keyRunID, uuid.New())
	ctx = context.WithValue(ctx, keyTrigger, trigger)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// RunMeta extracts the run metadata, zero-valued when the context was not
// stamped with RunBegin
func RunMeta(ctx context.Context) RunMetadata {
	meta := RunMetadata{}
	if id, ok := ctx.Value(keyRunID).(uuid.UUID); ok {
		meta.RunID = id
	}
	if trigger, ok := ctx.Value(keyTrigger).(string); ok {
		meta.Trigger = trigger
	}
	if start, ok := ctx.Value(keyStartTime).(time.Time); ok {
		meta.StartTime = start
	}
	return meta
}
