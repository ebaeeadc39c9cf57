package middleware

import (
	"net/http"
	"strings"

	"tribune/internal/services"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// ParseTokenHeader extracts the opaque key from an Authorization header.
// Accepts both "Token <key>" and "Bearer <key>" schemes.
func ParseTokenHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	scheme := strings.ToLower(parts[0])
	if scheme != "token" && scheme != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// LoadUser resolves the Authorization header to a user and sets it on the
// context. Unauthenticated requests pass through untouched.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ParseTokenHeader(c.GetHeader("Authorization"))
		if key != "" {
			if user, err := services.FindTokenUser(key); err == nil {
				c.Set(CheckUserKey, user)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests that LoadUser could not authenticate
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentification requise"})
			return
		}
		c.Next()
	}
}
