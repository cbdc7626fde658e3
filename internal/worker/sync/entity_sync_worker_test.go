package sync_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/domain/repository"
	"github.com/property-admin/internal/store"
	"github.com/property-admin/internal/usecase"
	workersync "github.com/property-admin/internal/worker/sync"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// stubDataRepo overrides only the list calls a test exercises; anything else
// panics via the embedded nil interface.
type stubDataRepo struct {
	repository.PropertyDataRepository
	listProperties func(context.Context) ([]domain.Property, error)
}

func (s *stubDataRepo) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.listProperties(ctx)
}

// stubCacheRepo is a no-op snapshot cache.
type stubCacheRepo struct {
	repository.CacheRepository
}

func (s *stubCacheRepo) GetSnapshot(ctx context.Context, collection string) ([]byte, error) {
	return nil, nil
}

func (s *stubCacheRepo) SetSnapshot(ctx context.Context, collection string, data []byte, ttl time.Duration) error {
	return nil
}

func eventMessage(t *testing.T, id, collection string) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(domain.EntityChangeEvent{
		Collection: collection,
		EntityID:   "e1",
		Action:     domain.ChangeActionUpdated,
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func newWorker(streamRepo *MockStreamRepository, list func(context.Context) ([]domain.Property, error)) (*workersync.EntitySyncWorker, *store.Store) {
	st := store.New()
	entityUC := usecase.NewEntityUseCase(
		&stubDataRepo{listProperties: list},
		&stubCacheRepo{},
		nil,
		st,
		time.Minute,
		zap.NewNop(),
	)
	return workersync.NewEntitySyncWorker(streamRepo, entityUC, "test-group", 10, zap.NewNop()), st
}

func TestEntitySyncWorker_Name(t *testing.T) {
	w, _ := newWorker(&MockStreamRepository{}, nil)
	assert.Equal(t, "entity-sync", w.Name())
}

func TestEntitySyncWorker_Stop(t *testing.T) {
	w, _ := newWorker(&MockStreamRepository{}, nil)

	// Stop should not error even if not started
	assert.NoError(t, w.Stop())
	// Calling stop multiple times should be safe
	assert.NoError(t, w.Stop())
}

func TestEntitySyncWorker_ContextCancellation(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamEntityChanged, "test-group").Return(nil)
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamEntityChanged, "test-group", mock.Anything, 10).Return([]domain.StreamMessage{}, nil)

	w, _ := newWorker(streamRepo, func(context.Context) ([]domain.Property, error) {
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}

func TestEntitySyncWorker_ConsumerGroupFailure(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamEntityChanged, "test-group").Return(errors.New("redis down"))

	w, _ := newWorker(streamRepo, nil)

	err := w.Start(context.Background())
	assert.Error(t, err)
}

func TestEntitySyncWorker_ProcessesBatch(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamEntityChanged, "test-group").Return(nil)

	// One batch with two events for the same collection and one malformed
	// message, then an empty queue.
	batch := []domain.StreamMessage{
		eventMessage(t, "1-0", domain.CollectionProperties),
		eventMessage(t, "2-0", domain.CollectionProperties),
		{ID: "3-0", Data: "{not json"},
	}
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamEntityChanged, "test-group", mock.Anything, 10).Return(batch, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamEntityChanged, "test-group", mock.Anything, 10).Return([]domain.StreamMessage{}, nil)
	streamRepo.On("AckMessage", mock.Anything, domain.StreamEntityChanged, "test-group", mock.Anything).Return(nil)

	listCalls := 0
	w, st := newWorker(streamRepo, func(context.Context) ([]domain.Property, error) {
		listCalls++
		return []domain.Property{{ID: "p1"}}, nil
	})

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return len(st.Properties()) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}

	// Both events collapsed into a single refresh
	assert.Equal(t, 1, listCalls)
	// All three messages acked: two processed, one malformed
	streamRepo.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamEntityChanged, "test-group", "1-0")
	streamRepo.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamEntityChanged, "test-group", "2-0")
	streamRepo.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamEntityChanged, "test-group", "3-0")
}

func TestEntitySyncWorker_RefreshFailureLeavesMessagesPending(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamEntityChanged, "test-group").Return(nil)

	batch := []domain.StreamMessage{eventMessage(t, "1-0", domain.CollectionProperties)}
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamEntityChanged, "test-group", mock.Anything, 10).Return(batch, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamEntityChanged, "test-group", mock.Anything, 10).Return([]domain.StreamMessage{}, nil)

	refreshed := make(chan struct{}, 1)
	w, _ := newWorker(streamRepo, func(context.Context) ([]domain.Property, error) {
		select {
		case refreshed <- struct{}{}:
		default:
		}
		return nil, errors.New("upstream down")
	})

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("refresh was never attempted")
	}

	require.NoError(t, w.Stop())
	<-done

	// The failed message stays pending for the next batch
	streamRepo.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
