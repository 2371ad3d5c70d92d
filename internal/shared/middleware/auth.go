package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"articles-backend/pkg/jwt"
)

// Auth guards mutating endpoints with a bearer access token. Public
// read surfaces are never behind this middleware.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		authorID, err := uuid.Parse(claims.AuthorID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid author ID in token"})
			c.Abort()
			return
		}

		c.Set("authorID", authorID)
		c.Next()
	}
}
