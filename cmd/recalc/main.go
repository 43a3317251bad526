package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/internal/adapter/repository"
	"github.com/giinwatch/giin-watch/internal/infrastructure/database"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
	"github.com/giinwatch/giin-watch/internal/usecase/refresh"
	"github.com/giinwatch/giin-watch/internal/usecase/scoring"
	"github.com/giinwatch/giin-watch/pkg/config"
	"github.com/giinwatch/giin-watch/pkg/jobcontext"
)

// One-shot recomputation of counters and activity scores. Intended for
// operators and container cron; the API server triggers the same pipeline
// via POST /v1/admin/recalculate.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	memberRepo := repository.NewMemberRepository(db)
	speechRepo := repository.NewSpeechRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	billRepo := repository.NewBillRepository(db)
	committeeRepo := repository.NewCommitteeRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	aggregator := aggregate.NewService(memberRepo, speechRepo, questionRepo, committeeRepo, scoreRepo, logger)
	calculator := scoring.NewCalculator(cfg.Scoring)
	scorer := scoring.NewService(memberRepo, speechRepo, questionRepo, voteRepo, billRepo, committeeRepo, scoreRepo, calculator, logger)
	pipeline := refresh.NewPipeline(aggregator, scorer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = jobcontext.RunBegin(ctx, jobcontext.TriggerCLI)

	if err := pipeline.Run(ctx); err != nil {
		logger.Fatal("recalculation failed", zap.Error(err))
	}
}
