package repository

import (
	"context"

	"github.com/property-admin/internal/domain"
)

// StreamRepository - redis streams access for entity change events.
type StreamRepository interface {
	// CreateConsumerGroup creates a consumer group, tolerating one that
	// already exists
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to maxCount pending messages without blocking
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream publishes a JSON-serialized payload
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
