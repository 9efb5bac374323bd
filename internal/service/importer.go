package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"flashvocab/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportService turns pasted JSON into vocabulary entries
type ImportService struct {
	store  *VocabStore
	logger *zap.Logger
	newID  func() string
}

// NewImportService creates a new import service
func NewImportService(store *VocabStore, logger *zap.Logger) *ImportService {
	return &ImportService{
		store:  store,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Import parses raw and appends the resulting entries to the store.
// Accepted shapes are {"word": "meaning", ...} and
// [{"word": ..., "meaning": ..., "example": ..., "id": ...}, ...].
func (s *ImportService) Import(raw string) (int, error) {
	data := bytes.TrimSpace([]byte(raw))
	if !json.Valid(data) {
		return 0, domain.NewValidationError("", "Invalid JSON. Check quotes and commas.")
	}

	taken := make(map[string]bool)
	for _, e := range s.store.Entries() {
		taken[e.ID] = true
	}

	var (
		entries []domain.Entry
		err     error
	)
	switch data[0] {
	case '{':
		entries, err = s.fromObject(data)
	case '[':
		entries, err = s.fromArray(data, taken)
	default:
		err = domain.NewValidationError("", "Invalid format. Use Object {'word': 'meaning'} or Array of Objects.")
	}
	if err != nil {
		return 0, err
	}

	if len(entries) == 0 {
		return 0, domain.NewValidationError("", "No valid items found.")
	}

	s.store.Dispatch(domain.AddMany{Entries: entries})

	s.logger.Info("Vocabulary imported", zap.Int("count", len(entries)))
	return len(entries), nil
}

type rawPair struct {
	key   string
	value json.RawMessage
}

// fromObject maps each key/value pair to an entry, keeping document order
func (s *ImportService) fromObject(data []byte) ([]domain.Entry, error) {
	pairs, err := decodeOrderedObject(data)
	if err != nil {
		return nil, domain.NewValidationError("", fmt.Sprintf("Invalid JSON object: %v", err))
	}

	var fieldErrs []domain.FieldError
	entries := make([]domain.Entry, 0, len(pairs))

	for i, p := range pairs {
		field := fmt.Sprintf("item %d", i+1)
		meaning := coerceString(p.value)

		if strings.TrimSpace(p.key) == "" {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "word is required"})
			continue
		}
		if strings.TrimSpace(meaning) == "" {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "meaning is required"})
			continue
		}

		entries = append(entries, domain.Entry{
			ID:      s.newID(),
			Word:    p.key,
			Meaning: meaning,
		})
	}

	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationErrors(fieldErrs)
	}
	return entries, nil
}

func (s *ImportService) fromArray(data []byte, taken map[string]bool) ([]domain.Entry, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, domain.NewValidationError("", fmt.Sprintf("Invalid JSON array: %v", err))
	}

	var fieldErrs []domain.FieldError
	entries := make([]domain.Entry, 0, len(items))

	for i, item := range items {
		field := fmt.Sprintf("item %d", i+1)

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "must be an object"})
			continue
		}

		entry := domain.Entry{
			ID:      strings.TrimSpace(coerceString(obj["id"])),
			Word:    strings.TrimSpace(coerceString(obj["word"])),
			Meaning: strings.TrimSpace(coerceString(obj["meaning"])),
			Example: strings.TrimSpace(coerceString(obj["example"])),
		}
		if entry.Word == "" {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "word is required"})
			continue
		}
		if entry.Meaning == "" {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: "meaning is required"})
			continue
		}

		if entry.ID == "" || taken[entry.ID] {
			entry.ID = s.newID()
		}
		taken[entry.ID] = true

		entries = append(entries, entry)
	}

	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationErrors(fieldErrs)
	}
	return entries, nil
}

// decodeOrderedObject reads a JSON object's members in document order.
// A repeated key keeps its first position and its last value.
func decodeOrderedObject(data []byte) ([]rawPair, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var pairs []rawPair
	positions := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		if pos, seen := positions[key]; seen {
			pairs[pos].value = value
			continue
		}
		positions[key] = len(pairs)
		pairs = append(pairs, rawPair{key: key, value: value})
	}
	return pairs, nil
}

// coerceString renders a JSON value as text: strings unquoted,
// everything else as compact JSON. An absent or null value is empty.
func coerceString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
