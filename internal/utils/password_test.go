package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "motdepasse123", hash, "hash must not be the plaintext")

	// Same password hashes to a different string every time (random salt)
	hash2, err := HashPassword("motdepasse123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("motdepasse123", hash))
	assert.False(t, CheckPasswordHash("mauvais", hash))
	assert.False(t, CheckPasswordHash("", hash))
	assert.False(t, CheckPasswordHash("motdepasse123", "not-a-hash"))
}
