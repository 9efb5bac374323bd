package handler

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"flashvocab/internal/domain"
	"flashvocab/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestRenderCard(t *testing.T) {
	entry := domain.Entry{ID: "1", Word: "Scope", Meaning: "Phạm vi", Example: "Define the scope.", Pinned: true}
	card := service.Card{Entry: entry, Index: 0, Total: 12}

	tests := []struct {
		name        string
		view        domain.View
		cv          domain.CardView
		contains    []string
		notContains []string
	}{
		{
			name:        "front side",
			view:        domain.ViewLearn,
			contains:    []string{"📚 Learn · 1 / 12", "Scope ⭐", "Tap Flip"},
			notContains: []string{"Phạm vi", "AI Explanation"},
		},
		{
			name:     "flipped",
			view:     domain.ViewFavorites,
			cv:       domain.CardView{Flipped: true},
			contains: []string{"⭐ Favorites · 1 / 12", "Meaning: Phạm vi", "Example: \"Define the scope.\""},
		},
		{
			name:     "explaining",
			view:     domain.ViewLearn,
			cv:       domain.CardView{Explaining: true},
			contains: []string{"Thinking..."},
		},
		{
			name:     "explained",
			view:     domain.ViewLearn,
			cv:       domain.CardView{Explanation: "Scope is the agreed work."},
			contains: []string{"AI Explanation:\nScope is the agreed work."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := renderCard(tt.view, card, tt.cv)
			for _, s := range tt.contains {
				assert.Contains(t, text, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, text, s)
			}
		})
	}
}

func TestRenderCard_LongExplanationFits(t *testing.T) {
	entry := domain.Entry{ID: "1", Word: "Scope", Meaning: "Phạm vi", Example: "Define the scope."}
	card := service.Card{Entry: entry, Index: 0, Total: 3}

	tests := []struct {
		name        string
		explanation string
	}{
		{name: "ascii", explanation: strings.Repeat("nuance ", 800)},
		{name: "vietnamese", explanation: strings.Repeat("sắc thái ", 700)},
		{name: "emoji", explanation: strings.Repeat("🤖", 3000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := renderCard(domain.ViewLearn, card, domain.CardView{Flipped: true, Explanation: tt.explanation})
			assert.LessOrEqual(t, textLen(text), maxMessageText)
			assert.True(t, utf8.ValidString(text))
			assert.Contains(t, text, "Meaning: Phạm vi")
			assert.Contains(t, text, "AI Explanation:")
			assert.True(t, strings.HasSuffix(text, "…"))
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "fits", in: "hello", limit: 5, want: "hello"},
		{name: "cut", in: "hello world", limit: 6, want: "hello…"},
		{name: "rune boundary", in: "ăâêôơư", limit: 4, want: "ăâê…"},
		{name: "surrogate pair", in: "a🤖b", limit: 3, want: "a…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateText(tt.in, tt.limit))
		})
	}
}

func TestCardMarkup_PinLabel(t *testing.T) {
	pinned := cardMarkup(domain.ViewLearn, domain.Entry{ID: "1", Pinned: true})
	unpinned := cardMarkup(domain.ViewLearn, domain.Entry{ID: "1"})

	assert.Len(t, pinned.InlineKeyboard, 3)
	assert.Equal(t, "★ Unpin word", pinned.InlineKeyboard[1][0].Text)
	assert.Equal(t, "☆ Favorite", unpinned.InlineKeyboard[1][0].Text)
}

func TestParseView(t *testing.T) {
	v, ok := parseView("learn")
	assert.True(t, ok)
	assert.Equal(t, domain.ViewLearn, v)

	v, ok = parseView("fav")
	assert.True(t, ok)
	assert.Equal(t, domain.ViewFavorites, v)

	_, ok = parseView("admin")
	assert.False(t, ok)
}

func TestRenderList(t *testing.T) {
	entries := []domain.Entry{
		{ID: "9", Word: "Risk", Meaning: "Rủi ro", Pinned: true},
		{ID: "10", Word: "Budget", Meaning: "Ngân sách"},
	}

	text := renderList(entries, 2, 2)

	assert.Contains(t, text, "page 2/2")
	assert.Contains(t, text, "9. Risk — Rủi ro ⭐")
	assert.Contains(t, text, "10. Budget — Ngân sách")
	assert.Equal(t, "📋 No vocabulary items.", renderList(nil, 1, 1))
}

func TestListMarkup(t *testing.T) {
	entries := []domain.Entry{
		{ID: "short", Word: "a", Meaning: "b"},
		{ID: strings.Repeat("x", 60), Word: "c", Meaning: "d"},
	}

	tests := []struct {
		name       string
		page       int
		totalPages int
		rows       int
	}{
		{name: "single page", page: 1, totalPages: 1, rows: 2},
		{name: "first of many", page: 1, totalPages: 3, rows: 3},
		{name: "middle page", page: 2, totalPages: 3, rows: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := listMarkup(entries, tt.page, tt.totalPages)
			assert.Len(t, markup.InlineKeyboard, tt.rows)
		})
	}

	middle := listMarkup(entries, 2, 3)
	assert.Len(t, middle.InlineKeyboard[1], 2)
}

func TestFitsCallback(t *testing.T) {
	assert.True(t, fitsCallback("confirm", "delete", "0b7b5a52-4b1e-4c7e-9a43-1f0c8f1f6d2e", "12"))
	assert.False(t, fitsCallback("confirm", "delete", strings.Repeat("x", 60), "1"))
	assert.False(t, fitsCallback("confirm", "delete", "a|b", "1"))
}

func TestListMarkup_SkipsIDsWithSeparator(t *testing.T) {
	entries := []domain.Entry{
		{ID: "a|b", Word: "Scope", Meaning: "Phạm vi"},
		{ID: "2", Word: "Risk", Meaning: "Rủi ro"},
	}

	markup := listMarkup(entries, 1, 1)
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			assert.NotContains(t, btn.Data, "a|b")
		}
	}
	// one entry row plus the admin menu row
	assert.Len(t, markup.InlineKeyboard, 2)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "single validation error",
			err:      domain.NewValidationError("", "No valid items found."),
			expected: "⚠️ No valid items found.",
		},
		{
			name: "several validation errors",
			err: domain.NewValidationErrors([]domain.FieldError{
				{Field: "item 1", Message: "word is required"},
				{Field: "item 3", Message: "meaning is required"},
			}),
			expected: "⚠️ item 1: word is required\nitem 3: meaning is required",
		},
		{
			name:     "generation failure",
			err:      fmt.Errorf("%w: timeout", domain.ErrGenerationFailed),
			expected: generateFailText,
		},
		{
			name:     "not found",
			err:      fmt.Errorf("delete 7: %w", domain.ErrNotFound),
			expected: notFoundText,
		},
		{
			name:     "anything else",
			err:      errors.New("disk full"),
			expected: genericErrorText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, userMessage(tt.err))
		})
	}
}

func TestDraftPrompt(t *testing.T) {
	assert.Equal(t, "Send the Vietnamese meaning:", draftPrompt("Vietnamese meaning", "", false))
	assert.Equal(t,
		"Current Vietnamese meaning: (empty)\nSend the new value. "+keepValueHint,
		draftPrompt("Vietnamese meaning", "", true),
	)
}
