package auth

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxSubjectID = "subject_id"
	ctxRole      = "role"
)

func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case errors.Is(err, ErrInvalidRole):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid role"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token"})
			}
			c.Abort()
			return
		}

		SetCaller(c, claims.SubjectID, claims.Role)

		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found"})
			c.Abort()
			return
		}

		if role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelf lets a caller with the given role through only when the path
// parameter names the caller's own id. Callers with other roles pass.
func RequireSelf(role, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, _ := GetRole(c)
		if callerRole != role {
			c.Next()
			return
		}

		id, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
			c.Abort()
			return
		}

		subjectID, ok := GetSubjectID(c)
		if !ok || subjectID != id {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access to another account is not allowed"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SetCaller records the authenticated identity on the request.
func SetCaller(c *gin.Context, subjectID int64, role string) {
	c.Set(ctxSubjectID, subjectID)
	c.Set(ctxRole, role)
}

// CallerIs reports whether the caller is the trainer or the user of a
// resource. Requests without an identity never match.
func CallerIs(c *gin.Context, trainerID, userID int64) bool {
	id, ok := GetSubjectID(c)
	if !ok {
		return false
	}

	role, _ := GetRole(c)
	switch role {
	case RoleTrainer:
		return id == trainerID
	case RoleUser:
		return id == userID
	default:
		return false
	}
}

func GetSubjectID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxSubjectID)
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}

func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxRole)
	if !exists {
		return "", false
	}

	role, ok := v.(string)
	return role, ok
}
