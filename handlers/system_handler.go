package handlers

import (
	"net/http"
	"strconv"

	"CeibaCheckIn/global"
	"CeibaCheckIn/utils/redislog"

	"github.com/gin-gonic/gin"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

// SystemHandler serves health and the recent application log.
type SystemHandler struct {
	log *redislog.Logger
}

func NewSystemHandler(rlog *redislog.Logger) *SystemHandler {
	return &SystemHandler{log: rlog}
}

// Health handles GET /health (public).
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
}

// Logs handles GET /logs?limit=N (protected), newest first.
func (h *SystemHandler) Logs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLogLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	entries, err := h.log.Recent(c.Request.Context(), int64(limit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []redislog.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}
