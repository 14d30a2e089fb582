package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "farmgate/pkg/domain-errors"
)

const testKey = "test-signing-key"

func signToken(t *testing.T, claims Claims, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	v := NewValidator(testKey)
	token := signToken(t, Claims{
		UserID: "op-123",
		Role:   "field_officer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testKey)

	claims, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "op-123", claims.UserID)
	assert.Equal(t, "field_officer", claims.Role)
}

func TestValidateTokenExpired(t *testing.T) {
	v := NewValidator(testKey)
	token := signToken(t, Claims{
		UserID: "op-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}, testKey)

	_, err := v.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateTokenWrongKey(t *testing.T) {
	v := NewValidator(testKey)
	token := signToken(t, Claims{UserID: "op-123"}, "other-key")

	_, err := v.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
