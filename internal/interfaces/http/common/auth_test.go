package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokens_RoundTrip(t *testing.T) {
	tokens := NewSessionTokens([]byte("secret"), "fitness-directory-api")

	signed, err := tokens.Issue("session-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	id, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestSessionTokens_Rejects(t *testing.T) {
	tokens := NewSessionTokens([]byte("secret"), "fitness-directory-api")
	expiry := time.Now().Add(time.Hour)

	otherSecret, err := NewSessionTokens([]byte("other"), "fitness-directory-api").Issue("s", expiry)
	require.NoError(t, err)
	otherIssuer, err := NewSessionTokens([]byte("secret"), "someone-else").Issue("s", expiry)
	require.NoError(t, err)
	expired, err := tokens.Issue("s", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	noSubject, err := tokens.Issue("", expiry)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": otherSecret,
		"wrong issuer": otherIssuer,
		"expired":      expired,
		"no subject":   noSubject,
		"garbage":      "not-a-jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Parse(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("  Bearer abc.def  ")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"", "Basic abc", "Bearer   "} {
		_, err := BearerToken(header)
		assert.ErrorIs(t, err, ErrMissingToken, header)
	}
}

func TestSessionContext(t *testing.T) {
	_, ok := SessionFromContext(context.Background())
	assert.False(t, ok)

	id, ok := SessionFromContext(ContextWithSession(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
