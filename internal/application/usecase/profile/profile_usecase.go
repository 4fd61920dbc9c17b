package profile

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/me-api/adapters/event"
	"github.com/khoahotran/me-api/internal/application/service"
	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/apperror"
	"github.com/khoahotran/me-api/pkg/logger"
)

const (
	MsgNameAndEmailRequired = "name and email are required"
	MsgEmailRequired        = "email is required"
	MsgAlreadySeeded        = "Profile already exists"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo profile.Repository
	publisher   service.EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, publisher service.EventPublisher, log logger.Logger) *ProfileUseCase {
	if publisher == nil {
		publisher = event.NoopPublisher{}
	}
	return &ProfileUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpsertProfileInput struct {
	Patch profile.Patch
}

type UpsertProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpsertProfile creates the profile matched by email, or merges the
// present fields into it.
func (uc *ProfileUseCase) ExecuteUpsertProfile(ctx context.Context, input UpsertProfileInput) (*UpsertProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteUpsertProfile")
	defer span.End()

	email := input.Patch.EmailValue()
	if email == "" || input.Patch.NameValue() == "" {
		return nil, apperror.NewValidation(MsgNameAndEmailRequired)
	}
	input.Patch.Email = &email
	span.SetAttributes(attribute.String("email", email))

	p, err := uc.profileRepo.Upsert(ctx, email, input.Patch)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("upsert profile failed: %w", err)
	}

	uc.publish(event.ProfileEventUpserted, p)
	return &UpsertProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	Patch profile.Patch
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile merges the present fields into the profile matched by
// email. Unlike upsert it never creates.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteUpdateProfile")
	defer span.End()

	email := input.Patch.EmailValue()
	if email == "" {
		return nil, apperror.NewValidation(MsgEmailRequired)
	}
	input.Patch.Email = &email
	span.SetAttributes(attribute.String("email", email))

	p, err := uc.profileRepo.Update(ctx, email, input.Patch)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	uc.publish(event.ProfileEventUpdated, p)
	return &UpdateProfileOutput{Profile: p}, nil
}

type SeedOutput struct {
	Seeded  bool
	Message string
	Profile *profile.Profile
}

// ExecuteSeedIfEmpty writes the sample profile only when the store is empty.
func (uc *ProfileUseCase) ExecuteSeedIfEmpty(ctx context.Context) (*SeedOutput, error) {
	p, seeded, err := uc.profileRepo.SeedIfEmpty(ctx, profile.SampleProfile())
	if err != nil {
		return nil, fmt.Errorf("seed profile failed: %w", err)
	}
	if !seeded {
		return &SeedOutput{Seeded: false, Message: MsgAlreadySeeded}, nil
	}

	uc.logger.Info("Seeded sample profile", zap.String("profile_id", p.ID.String()))
	uc.publish(event.ProfileEventSeeded, p)
	return &SeedOutput{Seeded: true, Profile: p}, nil
}

func (uc *ProfileUseCase) publish(eventType event.ProfileEventType, p *profile.Profile) {
	payload := event.ProfileEventPayload{
		EventType:  eventType,
		ProfileID:  p.ID,
		Email:      p.Email,
		Backend:    backendName(uc.profileRepo),
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.publisher.PublishProfileEvent(ctx, payload); err != nil {
			uc.logger.Error("Failed to publish profile event", err,
				zap.String("event_type", string(eventType)),
				zap.String("profile_id", p.ID.String()),
			)
		}
	}()
}

func backendName(repo profile.Repository) string {
	if b, ok := repo.(interface{ Backend() string }); ok {
		return b.Backend()
	}
	return ""
}
