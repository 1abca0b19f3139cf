package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAccessToken(t *testing.T) {
	token, err := IssueAccessToken("contador-1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "contador-1", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
}

func TestParseAccessToken_Rejects(t *testing.T) {
	expired, err := IssueAccessToken("contador-1", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAccessToken(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := IssueAccessToken("contador-1", "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseAccessToken(valid, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAccessToken(noSubject, "secret")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestIssueAccessToken_EmptySubject(t *testing.T) {
	_, err := IssueAccessToken("", "secret", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySubject)
}
