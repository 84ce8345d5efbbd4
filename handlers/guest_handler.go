package handlers // Controller layer translates HTTP <-> service calls.

import (
	"net/http"
	"strconv"

	"CeibaCheckIn/models"
	"CeibaCheckIn/services"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps import uploads; guest lists are small.
const maxUploadBytes = 8 << 20

// GuestHandler serves the staff guest list endpoints.
type GuestHandler struct {
	svc services.GuestService
}

func NewGuestHandler(svc services.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

// List handles GET /guests?q= (protected).
func (h *GuestHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /guests/:name (protected).
func (h *GuestHandler) Get(c *gin.Context) {
	g, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Upsert handles POST /guests (protected). Same name replaces, new name is prepended.
func (h *GuestHandler) Upsert(c *gin.Context) {
	var req models.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.svc.Upsert(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// SetAttendance handles PUT /guests/:name/attendance (protected).
func (h *GuestHandler) SetAttendance(c *gin.Context) {
	var req models.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.svc.SetAttendance(c.Request.Context(), c.Param("name"), *req.Attended)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Remove handles DELETE /guests/:name (protected).
func (h *GuestHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("name")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Import handles POST /import with a multipart "file" field (protected).
func (h *GuestHandler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	n, err := h.svc.Import(c.Request.Context(), fh.Filename, f)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}

// Export handles GET /export?format=csv|xlsx (protected) as an attachment.
func (h *GuestHandler) Export(c *gin.Context) {
	f, err := h.svc.Export(c.Request.Context(), c.DefaultQuery("format", services.FormatCSV))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(f.Name))
	c.Data(http.StatusOK, f.ContentType, f.Data)
}
