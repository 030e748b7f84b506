package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"debtwatch/api"
	"debtwatch/config"
	"debtwatch/database"
	"debtwatch/ratelimit"
	"debtwatch/repository"
	"debtwatch/service"
	"debtwatch/treasury"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting debtwatch...")

	// Load configuration
	cfg := config.Get()

	// Initialize repositories. In store-less mode they stay nil and the
	// services answer from the live upstream feed only.
	var (
		securityRepo  service.SecurityRepository
		auctionRepo   service.AuctionRepository
		snapshotRepo  service.DebtSnapshotRepository
		indicatorRepo service.IndicatorRepository
		wallRepo      service.MaturityWallRepository
		jobRepo       service.ETLJobRepository
	)

	if cfg.SkipDatabase {
		log.Println("SKIP_DATABASE set, running without a store")
	} else {
		log.Println("Connecting to database...")
		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		log.Println("Database connection established successfully")

		securityRepo = repository.NewSecurityRepository(db)
		auctionRepo = repository.NewAuctionRepository(db)
		snapshotRepo = repository.NewDebtSnapshotRepository(db)
		indicatorRepo = repository.NewIndicatorRepository(db)
		wallRepo = repository.NewMaturityWallRepository(db)
		jobRepo = repository.NewETLJobRepository(db)
	}

	// Upstream fiscal-data client
	client := treasury.NewClient(cfg.FiscalAPIBaseURL)

	// Initialize services
	log.Println("Initializing services...")
	debtService := service.NewDebtService(snapshotRepo, client)
	auctionService := service.NewAuctionService(auctionRepo, client)
	maturityService := service.NewMaturityService(wallRepo, securityRepo, client)
	healthService := service.NewHealthService(indicatorRepo, client)
	ingestService := service.NewIngestService(
		client, securityRepo, auctionRepo, snapshotRepo, indicatorRepo, wallRepo, jobRepo,
	)
	log.Println("Services initialized successfully")

	// Rate-limit counter store: shared Redis when configured, otherwise
	// in-process memory.
	var limiter ratelimit.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		limiter = ratelimit.NewRedisStore(redis.NewClient(opts))
		log.Println("Using Redis rate-limit store")
	} else {
		limiter = ratelimit.NewMemoryStore()
		log.Println("Using in-memory rate-limit store")
	}

	server := api.NewServer(cfg, debtService, auctionService, maturityService, healthService, ingestService, limiter)

	log.Printf("Running in %s mode", cfg.Environment)
	return server.ListenAndServe(ctx, fmt.Sprintf(":%d", cfg.Port))
}
