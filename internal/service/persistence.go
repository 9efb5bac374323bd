package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"flashvocab/internal/domain"
	"flashvocab/internal/repository"

	"go.uber.org/zap"
)

// Storage keys
const (
	StateKey      = "vocab_app_state"
	LearnIndexKey = "learn_session_index"
)

// ChatLearnKey returns the Learn cursor key of one chat
func ChatLearnKey(chatID int64) string {
	return fmt.Sprintf("%s:%d", LearnIndexKey, chatID)
}

// Persistence loads and saves the whole application state.
// Implementations never fail loudly: a bad read means "no state".
type Persistence interface {
	Load() (domain.State, bool)
	Save(state domain.State)
}

// IndexStorage keeps cursor positions under their own keys
type IndexStorage interface {
	LoadIndex(key string) (int, bool)
	SaveIndex(key string, index int)
}

// KVPersistence implements Persistence and IndexStorage on a key/value repository
type KVPersistence struct {
	repo   repository.KeyValueRepository
	logger *zap.Logger
}

// NewKVPersistence creates a new persistence adapter
func NewKVPersistence(repo repository.KeyValueRepository, logger *zap.Logger) *KVPersistence {
	return &KVPersistence{repo: repo, logger: logger}
}

// stateRecord mirrors the stored JSON; a nil list means the field was absent
type stateRecord struct {
	VocabList *[]domain.Entry `json:"vocabList"`
}

// EncodeState serializes state into the durable record format
func EncodeState(state domain.State) ([]byte, error) {
	return json.Marshal(state.Clone())
}

// DecodeState parses a durable record. It fails when the JSON is malformed
// or the vocabList field is missing.
func DecodeState(data []byte) (domain.State, error) {
	var rec stateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.State{}, fmt.Errorf("decode state: %w", err)
	}
	if rec.VocabList == nil {
		return domain.State{}, fmt.Errorf("decode state: vocabList is missing")
	}
	return domain.State{VocabList: *rec.VocabList}.Clone(), nil
}

// Load reads the stored state
func (p *KVPersistence) Load() (domain.State, bool) {
	raw, found, err := p.repo.Get(StateKey)
	if err != nil {
		p.logger.Warn("Failed to read stored state", zap.Error(err))
		return domain.State{}, false
	}
	if !found {
		return domain.State{}, false
	}

	state, err := DecodeState([]byte(raw))
	if err != nil {
		p.logger.Warn("Stored state is malformed, using default deck", zap.Error(err))
		return domain.State{}, false
	}
	return state, true
}

// Save writes state under StateKey
func (p *KVPersistence) Save(state domain.State) {
	data, err := EncodeState(state)
	if err != nil {
		p.logger.Error("Failed to encode state", zap.Error(err))
		return
	}
	if err := p.repo.Set(StateKey, string(data)); err != nil {
		p.logger.Error("Failed to save state",
			zap.Error(err),
			zap.Int("entries", len(state.VocabList)),
		)
	}
}

// LoadIndex reads a decimal cursor index stored under key
func (p *KVPersistence) LoadIndex(key string) (int, bool) {
	raw, found, err := p.repo.Get(key)
	if err != nil {
		p.logger.Warn("Failed to read cursor index", zap.String("key", key), zap.Error(err))
		return 0, false
	}
	if !found {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// SaveIndex writes index under key as a decimal string
func (p *KVPersistence) SaveIndex(key string, index int) {
	if err := p.repo.Set(key, strconv.Itoa(index)); err != nil {
		p.logger.Error("Failed to save cursor index",
			zap.String("key", key),
			zap.Int("index", index),
			zap.Error(err),
		)
	}
}
