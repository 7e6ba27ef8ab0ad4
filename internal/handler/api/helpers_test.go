//go:build unit

package api_test

import (
	"net/http"

	"retrack/internal/domain/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for the JWT middleware: any bearer token authenticates as userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		identity, err := auth.NewIdentity(userID.String(), "seller@example.com", "authenticated")
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set("identity", identity)
		c.Next()
	}
}
