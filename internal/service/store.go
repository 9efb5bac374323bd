package service

import (
	"sync"

	"flashvocab/internal/domain"

	"go.uber.org/zap"
)

// VocabStore owns the vocabulary list. All mutation goes through Dispatch.
type VocabStore struct {
	mu          sync.RWMutex
	state       domain.State
	persistence Persistence
	logger      *zap.Logger
}

// NewVocabStore restores state from persistence, falling back to the default deck.
// persistence may be nil.
func NewVocabStore(persistence Persistence, logger *zap.Logger) *VocabStore {
	state := domain.State{VocabList: domain.DefaultDeck()}
	source := "default"

	if persistence != nil {
		if loaded, ok := persistence.Load(); ok {
			// Re-applying as SetAll drops duplicate ids from hand-edited storage.
			state = domain.Apply(domain.State{}, domain.SetAll{Entries: loaded.VocabList})
			source = "storage"
		}
	}

	logger.Info("Vocabulary loaded",
		zap.String("source", source),
		zap.Int("entries", len(state.VocabList)),
	)

	return &VocabStore{
		state:       state,
		persistence: persistence,
		logger:      logger,
	}
}

// Dispatch applies action and persists the result
func (s *VocabStore) Dispatch(action domain.Action) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = domain.Apply(s.state, action)
	if s.persistence != nil {
		s.persistence.Save(s.state)
	}

	s.logger.Debug("State transition applied",
		zap.String("action", string(action.Kind())),
		zap.Int("entries", len(s.state.VocabList)),
	)

	return s.state.Clone()
}

// Snapshot returns a copy of the current state
func (s *VocabStore) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Entries returns the full list in order
func (s *VocabStore) Entries() []domain.Entry {
	return s.Snapshot().VocabList
}

// Pinned returns the pinned subset in list order
func (s *VocabStore) Pinned() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Pinned()
}

// Len returns the number of entries
func (s *VocabStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.VocabList)
}

// Find returns the entry with id
func (s *VocabStore) Find(id string) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.state.IndexOf(id); i >= 0 {
		return s.state.VocabList[i], true
	}
	return domain.Entry{}, false
}
