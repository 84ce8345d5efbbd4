// validates the staff JWT and injects ->
// its subject into the Gin context for downstream handlers.

package middlewares

import (
	"net/http"
	"strings"

	"CeibaCheckIn/global" // Context key + expected subject.

	"github.com/gin-gonic/gin"     // Gin context/request/response types
	"github.com/golang-jwt/jwt/v5" // JWT parsing and validation
)

// Auth returns a Gin middleware that validates "Authorization: Bearer <token>"
// and stores the staff subject under global.CtxStaffKey when the token is valid.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		// only HS256 tokens signed with our secret; exp is checked by the parser
		t, err := jwt.Parse(strings.TrimSpace(raw), func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || !t.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sub, err := t.Claims.GetSubject()
		if err != nil || sub != global.StaffSubject {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		c.Set(global.CtxStaffKey, sub)
		c.Next()
	}
}
