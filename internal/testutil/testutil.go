package testutil

import (
	"flashvocab/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test entry
func NewTestEntry(id, word, meaning string) domain.Entry {
	return domain.Entry{
		ID:      id,
		Word:    word,
		Meaning: meaning,
	}
}

// NewTestState creates a state holding entries
func NewTestState(entries ...domain.Entry) domain.State {
	list := make([]domain.Entry, len(entries))
	copy(list, entries)
	return domain.State{VocabList: list}
}
