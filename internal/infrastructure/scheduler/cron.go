// Package scheduler drives periodic refresh runs from a cron expression.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/internal/usecase/refresh"
	"github.com/giinwatch/giin-watch/pkg/jobcontext"
)

// CronScheduler runs the refresh pipeline on a cron schedule. Overlapping
// runs are allowed; the pipeline is snapshot-pure so the later run wins.
type CronScheduler struct {
	spec     string
	pipeline *refresh.Pipeline
	logger   *zap.Logger
	cron     *cron.Cron
}

// NewCronScheduler builds a scheduler configured via cron expression string
func NewCronScheduler(spec string, pipeline *refresh.Pipeline, logger *zap.Logger) *CronScheduler {
	return &CronScheduler{
		spec:     spec,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Start registers the refresh job and begins the schedule
func (s *CronScheduler) Start(ctx context.Context) error {
	if s.cron != nil {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(s.spec, func() {
		runCtx := jobcontext.RunBegin(ctx, jobcontext.TriggerCron)
		if err := s.pipeline.Run(runCtx); err != nil && s.logger != nil {
			s.logger.Error("scheduled refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron = c
	c.Start()
	if s.logger != nil {
		s.logger.Info("refresh schedule started", zap.String("spec", s.spec))
	}
	return nil
}

// Stop halts the schedule and waits for a running job to finish
func (s *CronScheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}
