package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("add donor: %w", apperrors.NewValidationError("donor_name_required", "Donor must have a company or last name"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrStorage)
	assert.Equal(t, "add donor: Donor must have a company or last name", err.Error())

	rule, ok := apperrors.RuleOf(err)
	assert.True(t, ok)
	assert.Equal(t, "donor_name_required", rule)
}

func TestStorageError_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("unique constraint: %w", apperrors.ErrDuplicate)
	err := apperrors.NewStorageError("campaign", "insert", cause)

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "failed to insert campaign: unique constraint: resource already exists", err.Error())

	var sErr *apperrors.StorageError
	assert.True(t, errors.As(err, &sErr))
	assert.Equal(t, "campaign", sErr.Entity)
}

func TestNotFound(t *testing.T) {
	err := apperrors.NotFound("donor", 42)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "donor 42: resource not found", err.Error())

	_, ok := apperrors.RuleOf(err)
	assert.False(t, ok)
}
