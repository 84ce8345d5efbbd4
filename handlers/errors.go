package handlers

import (
	"errors"
	"net/http"

	"CeibaCheckIn/services"

	"github.com/gin-gonic/gin"
)

// abortWithError maps service errors to the {"error": msg} envelope.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrGuestNotFound):
		status = http.StatusNotFound
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
