package service

import (
	"fmt"
	"strings"

	"flashvocab/internal/domain"

	"github.com/google/uuid"
)

// ListPageSize is the number of entries per admin list page
const ListPageSize = 8

// VocabService handles admin edits of the vocabulary list
type VocabService struct {
	store *VocabStore
	newID func() string
}

// NewVocabService creates a new vocab service
func NewVocabService(store *VocabStore) *VocabService {
	return &VocabService{store: store, newID: uuid.NewString}
}

// Create adds a new entry at the end of the list
func (s *VocabService) Create(word, meaning, example string) (domain.Entry, error) {
	word = strings.TrimSpace(word)
	meaning = strings.TrimSpace(meaning)
	if word == "" || meaning == "" {
		return domain.Entry{}, domain.NewValidationError("", "word and meaning cannot be empty")
	}

	entry := domain.Entry{
		ID:      s.newID(),
		Word:    word,
		Meaning: meaning,
		Example: strings.TrimSpace(example),
	}
	s.store.Dispatch(domain.AddMany{Entries: []domain.Entry{entry}})
	return entry, nil
}

// Update merges patch into an existing entry
func (s *VocabService) Update(patch domain.EntryPatch) (domain.Entry, error) {
	if _, ok := s.store.Find(patch.ID); !ok {
		return domain.Entry{}, fmt.Errorf("update %s: %w", patch.ID, domain.ErrNotFound)
	}
	if clearsField(patch.Word) || clearsField(patch.Meaning) {
		return domain.Entry{}, domain.NewValidationError("", "word and meaning cannot be empty")
	}

	s.store.Dispatch(domain.EditOne{Patch: patch})
	entry, _ := s.store.Find(patch.ID)
	return entry, nil
}

// Delete removes an entry
func (s *VocabService) Delete(id string) error {
	if _, ok := s.store.Find(id); !ok {
		return fmt.Errorf("delete %s: %w", id, domain.ErrNotFound)
	}
	s.store.Dispatch(domain.DeleteOne{ID: id})
	return nil
}

// TogglePin flips the pinned flag and returns the updated entry
func (s *VocabService) TogglePin(id string) (domain.Entry, bool) {
	s.store.Dispatch(domain.TogglePin{ID: id})
	return s.store.Find(id)
}

// Reset restores the bundled default deck
func (s *VocabService) Reset() {
	s.store.Dispatch(domain.ResetToDefault{})
}

// Clear removes every entry
func (s *VocabService) Clear() error {
	if s.store.Len() == 0 {
		return domain.NewValidationError("", "The list is already empty.")
	}
	s.store.Dispatch(domain.ClearAll{})
	return nil
}

// List returns one page of entries and the total page count
func (s *VocabService) List(page int) ([]domain.Entry, int) {
	entries := s.store.Entries()

	totalPages := (len(entries) + ListPageSize - 1) / ListPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * ListPageSize
	end := start + ListPageSize
	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end], totalPages
}

func clearsField(v *string) bool {
	return v != nil && strings.TrimSpace(*v) == ""
}
