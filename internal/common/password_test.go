package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEqual(t, "password", hash)

	require.NoError(t, CheckPassword("password", hash))
	require.Error(t, CheckPassword("hunter2", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("password")
	require.NoError(t, err)
	h2, err := HashPassword("password")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
