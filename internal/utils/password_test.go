package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walletworks/ewallet_app/internal/utils"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	require.True(t, utils.CheckPasswordHash("hunter22", hash))
	require.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := utils.HashPassword("hunter22")
	require.NoError(t, err)
	h2, err := utils.HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestGenerateSecureRandomString(t *testing.T) {
	s1, err := utils.GenerateSecureRandomString(21)
	require.NoError(t, err)
	require.Len(t, s1, 42, "hex encoding doubles the byte length")

	s2, err := utils.GenerateSecureRandomString(21)
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}
