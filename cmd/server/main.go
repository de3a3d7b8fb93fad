package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loungeadvisor-service/internal/api/v1/handler"
	"loungeadvisor-service/internal/api/v1/middleware"
	"loungeadvisor-service/internal/infrastructure/config"
	"loungeadvisor-service/internal/infrastructure/oauth"
	"loungeadvisor-service/internal/infrastructure/persistence"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/internal/infrastructure/secrets"
	"loungeadvisor-service/internal/interface/amadeus"
	mongoRepo "loungeadvisor-service/internal/interface/repository"
	"loungeadvisor-service/internal/usecase"
	"loungeadvisor-service/pkg/logger"
	"loungeadvisor-service/pkg/metrics"
	"loungeadvisor-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting LoungeAdvisor Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up airline and timezone reference repositories
	airlineRepository := mongoRepo.NewGormAirlineRepository(gormDB)
	timezoneRepository := mongoRepo.NewGormTimezoneRepository(gormDB)

	// Set up catalog repositories
	loungeRepository := mongoRepo.NewMongoLoungeRepository(db, log)
	userRepository := mongoRepo.NewMongoUserRepository(db)

	// Set up metrics
	appMetrics := metrics.NewMetrics("loungeadvisor")

	// Set up credential resolution: environment first, file fallback
	secretStore := secrets.NewChainStore(buildSecretStores(cfg)...)

	// Set up provider token cache
	tokenCache := oauth.NewCredentialCache(
		oauth.CredentialCacheConfig{
			SecretName:    cfg.AmadeusSecretName,
			TokenURL:      cfg.AmadeusBaseURL + "/v1/security/oauth2/token",
			CredentialTTL: cfg.CredentialTTL,
			TokenTTL:      cfg.TokenTTL,
		},
		secretStore,
		&http.Client{Timeout: cfg.ProviderTimeout},
		nil,
		log,
		appMetrics,
	)

	// Set up flight data client
	flightClient := amadeus.NewClient(
		cfg.AmadeusBaseURL,
		tokenCache,
		&http.Client{Timeout: cfg.ProviderTimeout},
		airlineRepository,
		log,
		appMetrics,
	)

	// Set up the recommendation core
	timeParser := utils.NewFlightTimeParser(timezoneRepository, log)
	recommender := usecase.NewRecommender(flightClient, loungeRepository, timeParser, log, appMetrics)
	planner := usecase.NewLayoverPlanner(recommender, loungeRepository, timeParser, log, appMetrics, cfg.PlannerWorkers)

	// Set up HTTP router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(log))

	handler.NewHealthHandler(cfg.AppVersion).SetupRoutes(router)
	handler.NewRecommendationHandler(recommender, planner, log).SetupRoutes(router)
	handler.NewCatalogHandler(loungeRepository, userRepository, log).SetupRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("LoungeAdvisor Service stopped")
}

func buildSecretStores(cfg *config.Config) []repository.SecretStore {
	stores := []repository.SecretStore{secrets.NewEnvStore()}
	if cfg.SecretsFile != "" {
		stores = append(stores, secrets.NewFileStore(cfg.SecretsFile))
	}
	return stores
}
