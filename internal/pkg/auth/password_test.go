package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpcell/launchpad/internal/pkg/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hashed)

	assert.True(t, auth.CheckPassword(hashed, "correct-horse"))
	assert.False(t, auth.CheckPassword(hashed, "battery-staple"))
	assert.False(t, auth.CheckPassword("", "correct-horse"))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	second, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
