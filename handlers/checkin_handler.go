package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"CeibaCheckIn/models"
	"CeibaCheckIn/services"
	"CeibaCheckIn/utils/sheets"

	"github.com/gin-gonic/gin"
)

const (
	maxCheckInBytes = 64 << 10
	checkInSavedMsg = "Check-in saved"
)

// checkInPayload accepts the English keys and the Spanish ones older clients send.
type checkInPayload struct {
	Name     string `json:"name"`
	Nombre   string `json:"nombre"`
	Day1     string `json:"day1"`
	Dia1     string `json:"dia1"`
	Day2     string `json:"day2"`
	Dia2     string `json:"dia2"`
	Attended bool   `json:"attended"`
	Asistio  bool   `json:"asistio"`
}

// CheckInHandler serves the public check-in endpoint.
type CheckInHandler struct {
	svc services.CheckInService
}

func NewCheckInHandler(svc services.CheckInService) *CheckInHandler {
	return &CheckInHandler{svc: svc}
}

// Submit handles POST /api/checkin. Every response uses the {ok, ...} envelope.
func (h *CheckInHandler) Submit(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxCheckInBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CheckInResponse{Error: "could not read body"})
		return
	}
	req, err := decodeCheckIn(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CheckInResponse{Error: "invalid JSON body"})
		return
	}

	row, err := h.svc.Submit(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrNameRequired):
		c.JSON(http.StatusBadRequest, models.CheckInResponse{Error: err.Error()})
	case errors.Is(err, sheets.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, models.CheckInResponse{Error: err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.CheckInResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusOK, models.CheckInResponse{OK: true, Message: checkInSavedMsg, Row: row})
	}
}

// decodeCheckIn reads a JSON object, or a JSON string holding one. An empty body is
// an empty request; validation happens in the service.
func decodeCheckIn(body []byte) (models.CheckInRequest, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return models.CheckInRequest{}, err
		}
		body = bytes.TrimSpace([]byte(inner))
	}
	if len(body) == 0 {
		return models.CheckInRequest{}, nil
	}

	var p checkInPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return models.CheckInRequest{}, err
	}
	return models.CheckInRequest{
		Name:     firstNonEmpty(p.Name, p.Nombre),
		Day1:     firstNonEmpty(p.Day1, p.Dia1),
		Day2:     firstNonEmpty(p.Day2, p.Dia2),
		Attended: p.Attended || p.Asistio,
	}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
