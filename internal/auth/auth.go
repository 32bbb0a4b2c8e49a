package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	jwtIssuer   = "ptgym-api"
	jwtAudience = "ptgym-clients"

	AccessTokenTTL = 24 * time.Hour

	RoleTrainer = "trainer"
	RoleUser    = "user"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidRole    = errors.New("invalid role")
	ErrEmptyJWTSecret = errors.New("jwt secret cannot be empty")
)

// JWTClaims identifies either a trainer or a user. SubjectID is the id in
// the table matching Role.
type JWTClaims struct {
	SubjectID int64  `json:"subject_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func validRole(role string) bool {
	switch role {
	case RoleTrainer, RoleUser:
		return true
	}
	return false
}

// GenerateAccessToken signs a token for a trainer or user. Login lives in a
// separate service; this is used by it and by tests.
func GenerateAccessToken(subjectID int64, role, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptyJWTSecret
	}
	if !validRole(role) {
		return "", ErrInvalidRole
	}

	now := time.Now()
	claims := &JWTClaims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString, secret string) (*JWTClaims, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&JWTClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(jwtAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !validRole(claims.Role) {
		return nil, ErrInvalidRole
	}

	return claims, nil
}
