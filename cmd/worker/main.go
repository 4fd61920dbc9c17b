package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/me-api/adapters/event"
	"github.com/khoahotran/me-api/adapters/media_storage"
	"github.com/khoahotran/me-api/adapters/persistence"
	snapshotUC "github.com/khoahotran/me-api/internal/application/usecase/snapshot"
	"github.com/khoahotran/me-api/internal/config"
	"github.com/khoahotran/me-api/pkg/logger"
)

func main() {
	fmt.Println("Starting Me API Snapshot Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Cannot start worker", errors.New("KAFKA_BROKERS is not set"))
	}

	// Database
	pg, err := persistence.ConnectPostgres(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer pg.Close()

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Worker Use Case
	profileRepo := persistence.NewPostgresProfileRepo(pg, appLogger)
	snapshotUseCase := snapshotUC.NewSnapshotUseCase(profileRepo, uploader, appLogger)

	// Kafka Consumer
	consumer := event.NewProfileEventsReader(cfg)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents), zap.String("group", event.ProfileSnapshotGroup))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ProfileEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Warn("Malformed profile event, skipping", zap.Int64("offset", msg.Offset), zap.Error(err))
			commitMessage(ctx, consumer, msg, appLogger)
			continue
		}

		if _, err := snapshotUseCase.Execute(ctx, payload); err != nil {
			appLogger.Error("Failed to process profile event", err,
				zap.String("event_type", string(payload.EventType)),
				zap.String("profile_id", payload.ProfileID.String()),
			)
			continue
		}

		commitMessage(ctx, consumer, msg, appLogger)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}
