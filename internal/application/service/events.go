package service

import (
	"context"

	"github.com/khoahotran/me-api/adapters/event"
)

type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error
}
