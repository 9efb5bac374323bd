package service

import (
	"errors"
	"fmt"
	"testing"

	"flashvocab/internal/domain"
	"flashvocab/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImportService(store *VocabStore) *ImportService {
	s := NewImportService(store, testutil.NewTestLogger())
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
	return s
}

func TestImportService_FlatObject(t *testing.T) {
	store, _ := newTestStore(t)
	s := newTestImportService(store)

	count, err := s.Import(`{"hello": "xin chào"}`)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []domain.Entry{{ID: "gen-1", Word: "hello", Meaning: "xin chào"}}, store.Entries())
}

func TestImportService_FlatObjectKeepsOrderAndCoerces(t *testing.T) {
	store, _ := newTestStore(t)
	s := newTestImportService(store)

	count, err := s.Import(`{"zebra": "ngựa vằn", "answer": 42, "flag": true, "apple": "táo", "zebra": "con ngựa vằn"}`)

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	entries := store.Entries()
	assert.Equal(t, "zebra", entries[0].Word)
	assert.Equal(t, "con ngựa vằn", entries[0].Meaning)
	assert.Equal(t, "42", entries[1].Meaning)
	assert.Equal(t, "true", entries[2].Meaning)
	assert.Equal(t, "apple", entries[3].Word)
}

func TestImportService_UsesUUIDsByDefault(t *testing.T) {
	store, _ := newTestStore(t)
	s := NewImportService(store, testutil.NewTestLogger())

	_, err := s.Import(`{"one": "một", "two": "hai"}`)

	require.NoError(t, err)
	entries := store.Entries()
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestImportService_ArrayAppendsToExistingList(t *testing.T) {
	store, _ := newTestStore(t, threeTestEntries()...)
	s := newTestImportService(store)

	count, err := s.Import(`[{"word":"Agile","meaning":"Linh hoạt"}]`)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	entries := store.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, threeTestEntries(), entries[:3])
	assert.Equal(t, domain.Entry{ID: "gen-1", Word: "Agile", Meaning: "Linh hoạt"}, entries[3])
}

func TestImportService_ArrayIDs(t *testing.T) {
	store, _ := newTestStore(t, threeTestEntries()...)
	s := newTestImportService(store)

	_, err := s.Import(`[
		{"id": "keep-me", "word": "Kanban", "meaning": "Bảng Kanban", "example": "Move the card."},
		{"id": "1", "word": "Taken", "meaning": "Trùng id"},
		{"id": "keep-me", "word": "Twice", "meaning": "Trùng trong lô"}
	]`)

	require.NoError(t, err)
	entries := store.Entries()
	require.Len(t, entries, 6)
	assert.Equal(t, domain.Entry{ID: "keep-me", Word: "Kanban", Meaning: "Bảng Kanban", Example: "Move the card."}, entries[3])
	assert.Equal(t, "gen-1", entries[4].ID)
	assert.Equal(t, "gen-2", entries[5].ID)
}

func TestImportService_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		errContains string
	}{
		{name: "invalid json", input: `{"hello": `, errContains: "Invalid JSON"},
		{name: "scalar", input: `"hello"`, errContains: "Invalid format"},
		{name: "number", input: `12`, errContains: "Invalid format"},
		{name: "empty object", input: `{}`, errContains: "No valid items found."},
		{name: "empty array", input: `[]`, errContains: "No valid items found."},
		{name: "array of strings", input: `["hello"]`, errContains: "must be an object"},
		{name: "missing word", input: `[{"meaning": "nghĩa"}]`, errContains: "word is required"},
		{name: "missing meaning", input: `[{"word": "hello"}]`, errContains: "meaning is required"},
		{name: "null meaning in array", input: `[{"word": "hello", "meaning": null}]`, errContains: "meaning is required"},
		{name: "null meaning in object", input: `{"hello": null}`, errContains: "meaning is required"},
		{name: "empty meaning in object", input: `{"hello": "  "}`, errContains: "meaning is required"},
		{name: "empty word in object", input: `{"": "xin chào"}`, errContains: "word is required"},
		{name: "null and empty in object", input: `{"hello": null, "": ""}`, errContains: "word is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t, threeTestEntries()...)
			before := store.Snapshot()
			s := newTestImportService(store)

			count, err := s.Import(tt.input)

			require.Error(t, err)
			assert.Equal(t, 0, count)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			messages := ""
			for _, fe := range ve.Errors {
				messages += fe.Message + ";"
			}
			assert.Contains(t, messages, tt.errContains)

			assert.Equal(t, before, store.Snapshot())
		})
	}
}

func TestImportService_PartialObjectIsRejected(t *testing.T) {
	store, _ := newTestStore(t)
	s := newTestImportService(store)

	_, err := s.Import(`{"ok": "được", "hello": null, "": ""}`)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, domain.FieldError{Field: "item 2", Message: "meaning is required"}, ve.Errors[0])
	assert.Equal(t, domain.FieldError{Field: "item 3", Message: "word is required"}, ve.Errors[1])
	assert.Equal(t, 0, store.Len())
}

func TestImportService_PartialArrayIsRejected(t *testing.T) {
	store, _ := newTestStore(t)
	s := newTestImportService(store)

	_, err := s.Import(`[{"word":"ok","meaning":"được"},{"word":""}]`)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "item 2", ve.Errors[0].Field)
	assert.Equal(t, 0, store.Len())
}
