// simple request logging

package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"CeibaCheckIn/utils/redislog"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request.
// Server errors are also pushed to rlog (nil-safe) so staff can read them from /api/v1/logs.
func RequestLogger(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep the path; handlers may rewrite it
		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		log.Printf("%s %s %d %s", c.Request.Method, path, status, elapsed)

		if status >= http.StatusInternalServerError {
			rlog.Warn("request failed", map[string]string{
				"method": c.Request.Method,
				"path":   path,
				"status": fmt.Sprint(status),
			})
		}
	}
}
