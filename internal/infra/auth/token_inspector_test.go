package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestTokenInspector_Expired_PastExp(t *testing.T) {
	inspector := NewTokenInspector()
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	assert.True(t, inspector.Expired(token))
}

func TestTokenInspector_Expired_FutureExp(t *testing.T) {
	inspector := NewTokenInspector()
	token := signedToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	assert.False(t, inspector.Expired(token))
}

func TestTokenInspector_Expired_NoExpClaim(t *testing.T) {
	inspector := NewTokenInspector()
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})

	assert.False(t, inspector.Expired(token))
}

func TestTokenInspector_Expired_OpaqueToken(t *testing.T) {
	inspector := NewTokenInspector()

	assert.False(t, inspector.Expired("not-a-jwt-at-all"))
	assert.False(t, inspector.Expired(""))
}
