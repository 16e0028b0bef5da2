package server

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIdentityToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"email": "john.doe@example.com",
		"name":  "John Doe",
	})
	raw, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)

	identity, err := decodeIdentityToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", identity.Email)
	assert.Equal(t, "John Doe", identity.Name)
	assert.Equal(t, "user-1", identity.Subject)
}

func TestDecodeIdentityTokenPartialClaims(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
	})
	raw, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)

	identity, err := decodeIdentityToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.Subject)
	assert.Empty(t, identity.Email)
	assert.Empty(t, identity.Name)
}

func TestDecodeIdentityTokenMalformed(t *testing.T) {
	_, err := decodeIdentityToken("not-a-jwt")
	require.Error(t, err)
}
