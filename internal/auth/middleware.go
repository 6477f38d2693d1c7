package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserID is the gin context key the middleware stores the
// authenticated user ID under.
const ContextUserID = "pennywise-user-id"

// Middleware verifies the bearer token of the request and stores the
// authenticated user ID in the context. Requests without a valid token are
// rejected with 401.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		header := c.GetHeader("Authorization")
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = parts[1]
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user ID for the request.
func UserID(c *gin.Context) uuid.UUID {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil
	}

	userID, ok := id.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return userID
}
