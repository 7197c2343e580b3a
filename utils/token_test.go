package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	tokenString, err := GenerateToken("user-123", "test-secret")
	assert.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Greater(t, claims["exp"].(float64), float64(time.Now().Unix()))
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken("user-123", "")
	assert.Error(t, err)
}
