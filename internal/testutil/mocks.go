package testutil

import (
	"context"

	"flashvocab/internal/ai"

	"github.com/stretchr/testify/mock"
)

// MockKeyValueRepository is a mock for KeyValueRepository
type MockKeyValueRepository struct {
	mock.Mock
}

func (m *MockKeyValueRepository) Get(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueRepository) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

// MockGenerator is a mock for ai.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateEntries(ctx context.Context, topic string, count int) ([]ai.GeneratedEntry, error) {
	args := m.Called(ctx, topic, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ai.GeneratedEntry), args.Error(1)
}

func (m *MockGenerator) ExplainWord(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}
