package auth

import (
	"net/http"

	"github.com/rezsam09/remuncandygramdatabase/internal/dto"

	"github.com/gin-gonic/gin"
)

const adminKeyParam = "key"

// RequireAdminKey returns a middleware that gates operator routes behind the
// shared static key, passed as the "key" query parameter and compared for
// exact equality. There is no per-operator identity behind this key.
func RequireAdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.Query(adminKeyParam) != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Next()
	}
}
