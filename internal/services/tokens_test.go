package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:    []byte("test-secret"),
		Issuer:    "roomdesk",
		AccessTTL: time.Hour,
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	svc := testTokenService()

	hash, err := svc.HashPassword("hunter2")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")
	assert.NotContains(t, hash, "hunter2")

	assert.True(t, svc.VerifyPassword("hunter2", hash))
	assert.False(t, svc.VerifyPassword("hunter3", hash))
	assert.False(t, svc.VerifyPassword("", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	svc := testTokenService()

	first, err := svc.HashPassword("same-password")
	require.NoError(t, err)
	second, err := svc.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.VerifyPassword("same-password", first))
	assert.True(t, svc.VerifyPassword("same-password", second))
}

func TestVerifyPassword_BcryptFallback(t *testing.T) {
	svc := testTokenService()

	hash, err := bcrypt.GenerateFromPassword([]byte("legacy-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, svc.VerifyPassword("legacy-pass", string(hash)))
	assert.False(t, svc.VerifyPassword("wrong", string(hash)))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	svc := testTokenService()

	assert.False(t, svc.VerifyPassword("whatever", "$argon2id$garbage"))
	assert.False(t, svc.VerifyPassword("whatever", ""))
}

func TestCreateAccessToken(t *testing.T) {
	svc := testTokenService()

	signed, exp, err := svc.CreateAccessToken(42, "alice", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.Greater(t, exp, time.Now().Unix())

	token, claims, err := svc.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "roomdesk", claims["iss"])
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "admin", claims["role"])
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc := testTokenService()

	signed, _, err := svc.CreateAccessToken(7, "bob", "user")
	require.NoError(t, err)

	other := testTokenService()
	other.Secret = []byte("another-secret")
	_, _, err = other.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	svc := testTokenService()

	signed, _, err := svc.CreateAccessToken(7, "bob", "user")
	require.NoError(t, err)

	other := testTokenService()
	other.Issuer = "someone-else"
	_, _, err = other.ParseToken(signed)
	assert.Error(t, err)
}
