package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nadeem1615/learning-platform/internal/config"
	"github.com/nadeem1615/learning-platform/internal/domain"
	"github.com/nadeem1615/learning-platform/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- Mocks ---

type MockTriviaSource struct {
	mock.Mock
}

func (m *MockTriviaSource) ListCategories(ctx context.Context) []domain.Category {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Category)
}

func (m *MockTriviaSource) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

// memoryRecordStore is an in-memory domain.RecordStore for stats tests.
type memoryRecordStore struct {
	data map[string]string
}

func newMemoryRecordStore() *memoryRecordStore {
	return &memoryRecordStore{data: make(map[string]string)}
}

func (s *memoryRecordStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := s.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return value, nil
}

func (s *memoryRecordStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	s.data[key] = value
	return nil
}
