package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "team member not found", ErrMemberNotFound.Error())
	assert.True(t, IsNotFound(ErrMemberNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrComponentNotFound)))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "planning component already exists with this name", ErrComponentExists.Error())
	assert.True(t, IsAlreadyExists(ErrComponentExists))
	assert.False(t, IsAlreadyExists(ErrMemberNotFound))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("start_date", "must be YYYY-MM-DD")
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "start_date")

	bare := NewValidationError("", "something is off")
	assert.Equal(t, "validation error: something is off", bare.Error())
}

func TestErrorsIsComparesByEntity(t *testing.T) {
	assert.ErrorIs(t, NewNotFoundError("team member"), ErrMemberNotFound)
	assert.NotErrorIs(t, NewNotFoundError("budget rule"), ErrMemberNotFound)
}
