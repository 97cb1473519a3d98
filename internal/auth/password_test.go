package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)

	first, err := h.Hash(context.Background(), "Password123")
	require.NoError(t, err)
	second, err := h.Hash(context.Background(), "Password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "Password123")
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)

	digest, err := h.Hash(context.Background(), "Password123")
	require.NoError(t, err)

	assert.True(t, h.Verify("Password123", digest))
	assert.False(t, h.Verify("password123", digest))
}

func TestHasher_VerifyMalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)

	assert.False(t, h.Verify("Password123", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("Password123", ""))
}

func TestNewHasher_ClampsCost(t *testing.T) {
	h := NewHasher(99, 0)

	digest, err := h.Hash(context.Background(), "Password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
