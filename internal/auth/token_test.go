package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret")

	before := time.Now()
	token, expiresAt, err := tm.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)

	// Expiry is fixed at one hour from issuance.
	assert.WithinDuration(t, before.Add(time.Hour), expiresAt, 2*time.Second)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_ParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a").Issue("user-42")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_ParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret").Parse("not.a.token")
	assert.Error(t, err)
}
