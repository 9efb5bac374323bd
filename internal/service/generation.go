package service

import (
	"context"
	"fmt"
	"strings"

	"flashvocab/internal/ai"
	"flashvocab/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Explanation fallbacks shown instead of model output
const (
	ExplainEmptyFallback = "Could not retrieve explanation."
	ExplainErrorFallback = "Error connecting to AI service."
)

// GenerationService feeds AI-generated vocabulary into the store
type GenerationService struct {
	client ai.Generator
	store  *VocabStore
	logger *zap.Logger
	newID  func() string
}

// NewGenerationService creates a new generation service
func NewGenerationService(client ai.Generator, store *VocabStore, logger *zap.Logger) *GenerationService {
	return &GenerationService{
		client: client,
		store:  store,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// GenerateFromTopic requests a batch of entries for topic and appends them.
// Any failure leaves the store untouched and wraps domain.ErrGenerationFailed.
func (s *GenerationService) GenerateFromTopic(ctx context.Context, topic string) (int, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return 0, domain.NewValidationError("topic", "cannot be empty")
	}

	generated, err := s.client.GenerateEntries(ctx, topic, ai.BatchSize)
	if err != nil {
		s.logger.Error("Failed to generate vocabulary",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return 0, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if len(generated) == 0 {
		return 0, fmt.Errorf("%w: empty response", domain.ErrGenerationFailed)
	}

	entries := make([]domain.Entry, 0, len(generated))
	for i, g := range generated {
		word := strings.TrimSpace(g.Word)
		meaning := strings.TrimSpace(g.Meaning)
		example := strings.TrimSpace(g.Example)
		if word == "" || meaning == "" || example == "" {
			return 0, fmt.Errorf("%w: item %d is incomplete", domain.ErrGenerationFailed, i+1)
		}
		entries = append(entries, domain.Entry{
			ID:      s.newID(),
			Word:    word,
			Meaning: meaning,
			Example: example,
		})
	}

	s.store.Dispatch(domain.AddMany{Entries: entries})

	s.logger.Info("Vocabulary generated",
		zap.String("topic", topic),
		zap.Int("count", len(entries)),
	)
	return len(entries), nil
}

// Explain returns a free-text explanation of word, or a fallback message
func (s *GenerationService) Explain(ctx context.Context, word string) string {
	text, err := s.client.ExplainWord(ctx, word)
	if err != nil {
		s.logger.Error("Failed to explain word",
			zap.String("word", word),
			zap.Error(err),
		)
		return ExplainErrorFallback
	}
	if strings.TrimSpace(text) == "" {
		return ExplainEmptyFallback
	}
	return text
}
