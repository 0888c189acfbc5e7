package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	h1 := HashPassword([]byte("secret"), salt)
	h2 := HashPassword([]byte("secret"), salt)

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 32)
}

func TestHashPassword_SaltChangesHash(t *testing.T) {
	h1 := HashPassword([]byte("secret"), []byte("salt-one-16bytes"))
	h2 := HashPassword([]byte("secret"), []byte("salt-two-16bytes"))

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	salt, err := RandBytes(16)
	require.NoError(t, err)
	hash := HashPassword([]byte("correct horse"), salt)

	assert.True(t, VerifyPassword([]byte("correct horse"), salt, hash))
	assert.False(t, VerifyPassword([]byte("wrong horse"), salt, hash))
	assert.False(t, VerifyPassword([]byte("correct horse"), salt, hash[:31]))
}

func TestRandBytes(t *testing.T) {
	a, err := RandBytes(16)
	require.NoError(t, err)
	b, err := RandBytes(16)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}
