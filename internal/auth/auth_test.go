package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateAccessToken(7, RoleTrainer, testSecret)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.SubjectID)
	assert.Equal(t, RoleTrainer, claims.Role)
}

func TestGenerateAccessTokenErrors(t *testing.T) {
	_, err := GenerateAccessToken(1, RoleUser, "")
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)

	_, err = GenerateAccessToken(1, "admin", testSecret)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestValidateToken(t *testing.T) {
	t.Run("Wrong secret", func(t *testing.T) {
		token, _ := GenerateAccessToken(1, RoleUser, testSecret)
		_, err := ValidateToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Empty secret", func(t *testing.T) {
		_, err := ValidateToken("whatever", "")
		assert.ErrorIs(t, err, ErrEmptyJWTSecret)
	})

	t.Run("Expired token", func(t *testing.T) {
		claims := &JWTClaims{
			SubjectID: 1,
			Role:      RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ValidateToken(token, testSecret)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Unknown role", func(t *testing.T) {
		claims := &JWTClaims{
			SubjectID: 1,
			Role:      "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    jwtIssuer,
				Audience:  []string{jwtAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = ValidateToken(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", testSecret)
		assert.Error(t, err)
	})
}
