package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/me-api/adapters/event"
	"github.com/khoahotran/me-api/internal/application/service"
	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/apperror"
	"github.com/khoahotran/me-api/pkg/logger"
)

const SnapshotFolder = "profiles/snapshots"

// SnapshotUseCase uploads a JSON copy of the profile after each change event.
type SnapshotUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	logger      logger.Logger
}

func NewSnapshotUseCase(repo profile.Repository, up service.Uploader, log logger.Logger) *SnapshotUseCase {
	return &SnapshotUseCase{profileRepo: repo, uploader: up, logger: log}
}

// Execute returns the uploaded URL, or "" when the event was skipped.
func (uc *SnapshotUseCase) Execute(ctx context.Context, payload event.ProfileEventPayload) (string, error) {
	if payload.Backend == "memory" {
		uc.logger.Info("Event from in-memory store, nothing durable to snapshot", zap.String("profile_id", payload.ProfileID.String()))
		return "", nil
	}

	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			uc.logger.Warn("Profile not found, skip snapshot", zap.String("profile_id", payload.ProfileID.String()))
			return "", nil
		}
		return "", fmt.Errorf("get profile failed: %w", err)
	}
	if p.ID != payload.ProfileID {
		uc.logger.Warn("Event refers to another profile document, skip snapshot",
			zap.String("event_profile_id", payload.ProfileID.String()),
			zap.String("current_profile_id", p.ID.String()),
		)
		return "", nil
	}

	body, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile snapshot failed: %w", err)
	}

	publicID := fmt.Sprintf("%s-%d.json", p.ID.String(), payload.OccurredAt.Unix())
	url, err := uc.uploader.UploadRaw(ctx, bytes.NewReader(body), SnapshotFolder, publicID)
	if err != nil {
		return "", fmt.Errorf("upload profile snapshot failed: %w", err)
	}

	uc.logger.Info("Profile snapshot uploaded",
		zap.String("event_type", string(payload.EventType)),
		zap.String("profile_id", p.ID.String()),
		zap.String("url", url),
	)
	return url, nil
}
