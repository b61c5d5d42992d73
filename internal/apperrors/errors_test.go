package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError(500, "Error fetching user", cause)

	require.Equal(t, "Error fetching user: connection refused", err.Error())
	require.ErrorIs(t, err, cause)

	bare := NewAppError(404, "User not found", nil)
	require.Equal(t, "User not found", bare.Error())
}
