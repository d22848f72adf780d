package middleware

import (
	"net/http"
	"strings"

	"inkwell/internal/entity"
	"inkwell/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UserResolver maps a verified username to a concrete user record.
// Satisfied by persistent.UserRepository.
type UserResolver interface {
	GetByUsername(username string) (*entity.User, error)
}

// AuthMiddleware verifies the bearer token, resolves the embedded username
// to a user record and threads the identity into the request context.
// A valid token whose username no longer matches a user is still a 401.
func AuthMiddleware(jwtService *jwt.Service, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			c.Abort()
			return
		}

		user, err := users.GetByUsername(claims.Username)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}
