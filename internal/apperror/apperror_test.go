package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", Validation("event", "name", "event name cannot be empty"), ErrValidation},
		{"not found", NotFound("event", "abc"), ErrNotFound},
		{"conflict", Conflict("registration", "duplicate"), ErrConflict},
		{"unauthorized", Unauthorized("no token"), ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.kind))
			for _, other := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrUnauthorized} {
				if other != tt.kind {
					assert.False(t, errors.Is(tt.err, other))
				}
			}
		})
	}
}

func TestErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("register for event: %w", Conflict("registration", "duplicate"))
	assert.True(t, errors.Is(err, ErrConflict))

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "registration", appErr.Entity)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "validation failed: event name cannot be empty",
		Validation("event", "name", "event name cannot be empty").Error())
	assert.Equal(t, "conflict", (&Error{Kind: ErrConflict}).Error())
}
