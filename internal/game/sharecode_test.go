package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShareCode(t *testing.T) {
	code := NewShareCode()
	require.Len(t, code, 8)
	for _, ch := range code {
		require.Contains(t, "0123456789abcdef", string(ch))
	}

	require.NotEqual(t, code, NewShareCode())
}
