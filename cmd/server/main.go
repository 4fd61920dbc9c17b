package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/me-api/adapters/event"
	httpAdapter "github.com/khoahotran/me-api/adapters/http"
	"github.com/khoahotran/me-api/adapters/persistence"
	"github.com/khoahotran/me-api/internal/application/service"
	profileUC "github.com/khoahotran/me-api/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/me-api/internal/application/usecase/project"
	searchUC "github.com/khoahotran/me-api/internal/application/usecase/search"
	skillUC "github.com/khoahotran/me-api/internal/application/usecase/skill"
	"github.com/khoahotran/me-api/internal/config"
	"github.com/khoahotran/me-api/pkg/logger"
	"github.com/khoahotran/me-api/pkg/tracing"
)

func main() {
	fmt.Println("Start Me API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "me-api")
	if err != nil {
		appLogger.Warn("Tracing disabled", zap.Error(err))
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	// Durable store; failure keeps the API up on the in-memory holder
	pg, err := persistence.ConnectPostgres(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Postgres unavailable, serving from in-memory store", zap.Error(err))
	} else {
		defer pg.Close()
		if cfg.DB.Migrations != "" {
			if err := persistence.RunMigrations(cfg.DB.Migrations, cfg.DB.DSN, appLogger); err != nil {
				appLogger.Fatal("Cannot apply migrations", err)
			}
		}
	}

	var limiter httpAdapter.RateLimiter
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, write rate limiting disabled", zap.Error(err))
	} else if redisClient != nil {
		defer redisClient.Close()
		limiter = persistence.NewRedisRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	var publisher service.EventPublisher = event.NoopPublisher{}
	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("Kafka not configured, profile events are dropped", zap.Error(err))
	} else {
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Repositories
	store := persistence.NewProfileStore(
		pg,
		persistence.NewPostgresProfileRepo(pg, appLogger),
		persistence.NewMemoryProfileRepo(),
	)
	searchRepo := persistence.NewPostgresSearchRepo(pg, appLogger)

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(store, publisher, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(store)
	rssUseCase := projectUC.NewRSSUseCase(store, cfg.App.BaseURL, appLogger)
	topSkillsUseCase := skillUC.NewTopSkillsUseCase(store)
	searchUseCase := searchUC.NewSearchUseCase(searchRepo, store, appLogger)

	// HTTP Handlers
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Health:  httpAdapter.NewHealthHandler(store),
		Profile: httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Project: httpAdapter.NewProjectHandler(listProjectsUseCase, rssUseCase, appLogger),
		Skill:   httpAdapter.NewSkillHandler(topSkillsUseCase, appLogger),
		Search:  httpAdapter.NewSearchHandler(searchUseCase, appLogger),
	}, httpAdapter.RouterOptions{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
	}, limiter, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("store", store.Backend()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
