package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/domain/repository"
	"github.com/property-admin/internal/usecase"
	"github.com/property-admin/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // pause when the queue is empty
)

// EntitySyncWorker consumes entity change events and refreshes the touched
// collections, which re-populates the store and refreshes the snapshot cache
// other instances warm-start from. Events only name a collection; the worker
// refetches it whole rather than patching single entities.
type EntitySyncWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	entityUC     *usecase.EntityUseCase
	consumerName string
	maxBatchSize int
}

// NewEntitySyncWorker - creation of a new EntitySyncWorker.
func NewEntitySyncWorker(
	streamRepo repository.StreamRepository,
	entityUC *usecase.EntityUseCase,
	consumerGroup string,
	maxBatchSize int,
	logger *zap.Logger,
) *EntitySyncWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &EntitySyncWorker{
		BaseWorker:   worker.NewBaseWorker("entity-sync", consumerGroup, logger),
		streamRepo:   streamRepo,
		entityUC:     entityUC,
		consumerName: consumerName,
		maxBatchSize: maxBatchSize,
	}
}

// Start runs the consume loop.
func (w *EntitySyncWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting EntitySyncWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", w.maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamEntityChanged, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // pause before retrying the read
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and handles one batch of messages. Returns the number
// of messages consumed from the stream.
func (w *EntitySyncWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamEntityChanged,
		w.ConsumerGroup(),
		w.consumerName,
		w.maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // Queue is empty
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	// Several events for the same collection collapse into one refresh.
	touched := make(map[string][]string)
	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK the broken message so it does not wedge the group
			_ = w.streamRepo.AckMessage(ctx, domain.StreamEntityChanged, w.ConsumerGroup(), msg.ID)
			continue
		}

		touched[event.Collection] = append(touched[event.Collection], msg.ID)
	}

	for collection, messageIDs := range touched {
		if err := w.entityUC.Refresh(ctx, collection); err != nil {
			// Leave the messages pending; the next batch retries them.
			logger.Error("Failed to refresh collection",
				zap.String("collection", collection),
				zap.Error(err))
			continue
		}

		for _, id := range messageIDs {
			if err := w.streamRepo.AckMessage(ctx, domain.StreamEntityChanged, w.ConsumerGroup(), id); err != nil {
				logger.Warn("Failed to ack message", zap.String("message_id", id), zap.Error(err))
			}
		}

		logger.Debug("Collection synced",
			zap.String("collection", collection),
			zap.Int("events", len(messageIDs)))
	}

	return len(messages), nil
}

func (w *EntitySyncWorker) parseMessage(msg domain.StreamMessage) (*domain.EntityChangeEvent, error) {
	var event domain.EntityChangeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if !domain.ValidCollection(event.Collection) {
		return nil, fmt.Errorf("unknown collection %q", event.Collection)
	}
	return &event, nil
}
