package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.Generate(7, "anita@example.com", "business")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "anita@example.com", claims.Email)
	assert.Equal(t, "business", claims.Role)

	// Expiry is pinned at issue time, 24 hours out
	expiresIn := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenTTL.Seconds(), expiresIn.Seconds(), 5)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	service := NewJWTService("test-secret")

	past := time.Now().Add(-time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 7,
		Email:  "anita@example.com",
		Role:   "business",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-TokenTTL)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	claims, err := service.Validate(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_Validate_Malformed(t *testing.T) {
	service := NewJWTService("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		claims, err := service.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrTokenMalformed)
		assert.Nil(t, claims)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewJWTService("other-secret")
		token, err := other.Generate(7, "anita@example.com", "business")
		assert.NoError(t, err)

		claims, err := service.Validate(token)
		assert.ErrorIs(t, err, ErrTokenMalformed)
		assert.Nil(t, claims)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := service.Generate(7, "anita@example.com", "business")
		assert.NoError(t, err)

		tampered := []byte(token)
		mid := len(tampered) / 2
		if tampered[mid] == 'a' {
			tampered[mid] = 'b'
		} else {
			tampered[mid] = 'a'
		}

		claims, err := service.Validate(string(tampered))
		assert.ErrorIs(t, err, ErrTokenMalformed)
		assert.Nil(t, claims)
	})
}
