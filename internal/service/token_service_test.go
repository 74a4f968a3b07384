package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.IssueSessionToken("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", claims.SessionID)
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	svc := NewTokenService("test-secret")
	other := NewTokenService("other-secret")

	token, err := svc.IssueSessionToken("session-123")
	require.NoError(t, err)

	_, err = other.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateSessionToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
