package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/giinwatch/giin-watch/pkg/validator"

	"github.com/giinwatch/giin-watch/internal/adapter/handler"
	"github.com/giinwatch/giin-watch/internal/adapter/repository"
	"github.com/giinwatch/giin-watch/internal/infrastructure/cache"
	"github.com/giinwatch/giin-watch/internal/infrastructure/database"
	"github.com/giinwatch/giin-watch/internal/infrastructure/scheduler"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
	"github.com/giinwatch/giin-watch/internal/usecase/refresh"
	"github.com/giinwatch/giin-watch/internal/usecase/scoring"
	whipuse "github.com/giinwatch/giin-watch/internal/usecase/whip"
	"github.com/giinwatch/giin-watch/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use cmd/migrate for schema changes in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	var statsCache aggregate.StatsCache
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, falling back to in-memory cache: %v", err)
		statsCache = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		statsCache = cache.NewRedisStore(redisClient)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	memberRepo := repository.NewMemberRepository(db)
	speechRepo := repository.NewSpeechRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	billRepo := repository.NewBillRepository(db)
	committeeRepo := repository.NewCommitteeRepository(db)
	whipRepo := repository.NewWhipRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Initialize services
	log.Println("🧮 Initializing services...")
	aggregator := aggregate.NewService(memberRepo, speechRepo, questionRepo, committeeRepo, scoreRepo, logger)
	calculator := scoring.NewCalculator(cfg.Scoring)
	scorer := scoring.NewService(memberRepo, speechRepo, questionRepo, voteRepo, billRepo, committeeRepo, scoreRepo, calculator, logger)
	whipService := whipuse.NewService(memberRepo, voteRepo, billRepo, whipRepo, logger)
	pipeline := refresh.NewPipeline(aggregator, scorer, logger)

	// Initialize handlers
	log.Println("🛣️  Setting up routes...")
	memberHandler := handler.NewMember(memberRepo, speechRepo, questionRepo, voteRepo, billRepo, committeeRepo, scoreRepo, aggregator, logger)
	partyHandler := handler.NewParty(aggregator, statsCache, logger)
	whipHandler := handler.NewWhip(whipService, logger)
	scoreHandler := handler.NewScore(scoreRepo, pipeline, logger)
	metaHandler := handler.NewMeta(settingRepo, logger)

	router := handler.NewRouter(cfg, memberHandler, partyHandler, whipHandler, scoreHandler, metaHandler)
	router.Setup(e)

	// Start scheduled refresh when enabled
	var cronScheduler *scheduler.CronScheduler
	if cfg.Scheduler.Enabled {
		log.Printf("⏰ Starting refresh schedule: %s", cfg.Scheduler.Spec)
		cronScheduler = scheduler.NewCronScheduler(cfg.Scheduler.Spec, pipeline, logger)
		if err := cronScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start refresh schedule: %v", err)
		}
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cronScheduler != nil {
		cronScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
