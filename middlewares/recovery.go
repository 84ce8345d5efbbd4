// catches panics and returns 500 without crashing the server.

package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"CeibaCheckIn/utils/redislog"

	"github.com/gin-gonic/gin" // gin context and middleware support
)

// Recovery responds 500 if a handler panics, and logs the panic value.
func Recovery(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %v", r)
				rlog.Error("panic recovered", map[string]string{"path": c.Request.URL.Path, "panic": fmt.Sprint(r)})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
