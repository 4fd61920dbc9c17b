package event

import (
	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/me-api/internal/config"
)

const ProfileSnapshotGroup = "profile-snapshot-group"

func NewProfileEventsReader(cfg config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicProfileEvents,
		GroupID:  ProfileSnapshotGroup,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
