package validator

import (
	"testing"

	"pushsvc/internal/domain/entity"
	domainerrors "pushsvc/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_NotificationRequest_MissingFields(t *testing.T) {
	v := New()

	err := v.Validate(&entity.NotificationRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRequest)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "userIds is required")
	assert.Contains(t, appErr.Details(), "title is required")
	assert.Contains(t, appErr.Details(), "body is required")
}

func TestValidator_NotificationRequest_EmptyTargetID(t *testing.T) {
	v := New()

	err := v.Validate(&entity.NotificationRequest{
		UserIDs: []string{"u1", ""},
		Title:   "t",
		Body:    "b",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "userIds[1] is required")
}

func TestValidator_NotificationRequest_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&entity.NotificationRequest{
		UserIDs: []string{"u1"},
		Title:   "Game start",
		Body:    "Your match begins now",
	})

	assert.NoError(t, err)
}
