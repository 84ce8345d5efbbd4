package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"CeibaCheckIn/mocks"
	"CeibaCheckIn/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestRequestLogger_DoesNotInterfere(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(nil))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "hi") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", w.Body.String())
}

func TestRequestLogger_ServerErrorGoesToRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rlog, _, rmock := mocks.NewRedisLoggerWithMock()
	rlog.WithClock(func() time.Time { return fixedNow })

	entry, err := json.Marshal(redislog.Entry{
		Level: "warn", Msg: "request failed", Time: "2025-03-14T09:30:00Z",
		Meta: map[string]string{"method": "GET", "path": "/fail", "status": "502"},
	})
	require.NoError(t, err)
	rmock.ExpectTxPipeline()
	rmock.ExpectLPush("logs:app", entry).SetVal(1)
	rmock.ExpectLTrim("logs:app", 0, 99).SetVal("OK")
	rmock.ExpectExpire("logs:app", 24*time.Hour).SetVal(true)
	rmock.ExpectTxPipelineExec()

	r := gin.New()
	r.Use(RequestLogger(rlog))
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) }) // no redis traffic

	for _, p := range []string{"/ok", "/fail"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	assert.NoError(t, rmock.ExpectationsWereMet())
}
