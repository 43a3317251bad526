// Package refresh runs the full derived-data pipeline: recount raw-record
// counters, then recompute activity scores from the fresh counters.
package refresh

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/internal/infrastructure/metrics"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
	uerrors "github.com/giinwatch/giin-watch/internal/usecase/errors"
	"github.com/giinwatch/giin-watch/internal/usecase/scoring"
	"github.com/giinwatch/giin-watch/pkg/jobcontext"
)

// Pipeline chains aggregation and scoring. Both stages are pure over a
// snapshot with last-write-wins upserts, so overlapping runs converge on
// the next run rather than corrupting each other.
type Pipeline struct {
	aggregator *aggregate.Service
	scorer     *scoring.Service
	logger     *zap.Logger
	running    atomic.Bool
}

// NewPipeline creates a new refresh pipeline
func NewPipeline(aggregator *aggregate.Service, scorer *scoring.Service, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		aggregator: aggregator,
		scorer:     scorer,
		logger:     logger,
	}
}

// Run executes one full recomputation. The aggregation stage must finish
// before scoring starts because scores read the counters it writes.
// Returns ErrRecalcInFlight when a run is already in progress; the caller
// can simply wait for the running one.
func (p *Pipeline) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return uerrors.ErrRecalcInFlight
	}
	defer p.running.Store(false)

	started := time.Now()

	if err := p.aggregator.Recount(ctx); err != nil {
		metrics.RecalcRuns.WithLabelValues("failure").Inc()
		if p.logger != nil {
			p.logger.Error("recount stage failed", zap.Error(err))
		}
		return fmt.Errorf("%w: %v", uerrors.ErrRecountFailed, err)
	}

	scored, err := p.scorer.RecalculateAll(ctx)
	if err != nil {
		metrics.RecalcRuns.WithLabelValues("failure").Inc()
		if p.logger != nil {
			p.logger.Error("scoring stage failed", zap.Error(err))
		}
		return fmt.Errorf("%w: %v", uerrors.ErrScoringFailed, err)
	}

	metrics.RecalcRuns.WithLabelValues("success").Inc()
	metrics.LastRecalcTimestamp.SetToCurrentTime()
	if p.logger != nil {
		meta := jobcontext.RunMeta(ctx)
		p.logger.Info("refresh pipeline completed",
			zap.String("run_id", meta.RunID.String()),
			zap.String("trigger", meta.Trigger),
			zap.Int("members_scored", scored),
			zap.Duration("elapsed", time.Since(started)),
		)
	}
	return nil
}
