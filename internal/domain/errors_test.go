package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("item 2", "word is required")

	assert.Equal(t, "item 2: word is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	wrapped := fmt.Errorf("import: %w", err)
	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Len(t, ve.Errors, 1)
}

func TestValidationError_NoField(t *testing.T) {
	err := NewValidationError("", "No valid items found.")
	assert.Equal(t, "No valid items found.", err.Error())
}

func TestValidationError_Multiple(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}}
	assert.Equal(t, "validation: 2 errors", err.Error())
}

func TestCardView_Reset(t *testing.T) {
	v := CardView{EntryID: "a", Flipped: true, Explanation: "text"}

	v.Reset("a")
	assert.True(t, v.Flipped)
	assert.Equal(t, "text", v.Explanation)

	v.Reset("b")
	assert.Equal(t, CardView{EntryID: "b"}, v)
}
