package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"CeibaCheckIn/global"
	"CeibaCheckIn/mocks"
	"CeibaCheckIn/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secret = "secret"

type fixture struct {
	r       *gin.Engine
	guests  *mocks.GuestServiceMock
	checkIn *mocks.CheckInServiceMock
	auth    *mocks.AuthServiceMock
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	seed := filepath.Join(t.TempDir(), "guests.csv")
	require.NoError(t, os.WriteFile(seed, []byte("Nombre,Día 1,Día 2,Estado\nAna,,,"), 0o644))

	f := fixture{
		r:       gin.New(),
		guests:  new(mocks.GuestServiceMock),
		checkIn: new(mocks.CheckInServiceMock),
		auth:    new(mocks.AuthServiceMock),
	}
	Setup(f.r, Deps{Guests: f.guests, CheckIn: f.checkIn, Auth: f.auth, JWTSecret: secret, SeedCSV: seed})
	return f
}

func (f fixture) serve(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.r.ServeHTTP(w, req)
	return w
}

func staffToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": global.StaffSubject, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestSetup_Smoke(t *testing.T) {
	f := newFixture(t)

	w := f.serve(http.MethodPost, "/api/v1/auth/login", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code) // route exists; body missing

	assert.Equal(t, http.StatusOK, f.serve(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusNotFound, f.serve(http.MethodGet, "/nope", "", "").Code)
}

func TestSetup_ServesSeed(t *testing.T) {
	w := newFixture(t).serve(http.MethodGet, "/guests.csv", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nombre,Día 1")
}

func TestSetup_CheckInMethodNotAllowed(t *testing.T) {
	w := newFixture(t).serve(http.MethodGet, "/api/checkin", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"method not allowed"}`, w.Body.String())
}

func TestSetup_CheckInIsPublic(t *testing.T) {
	f := newFixture(t)
	f.checkIn.On("Submit", mock.Anything, models.CheckInRequest{Name: "Ana"}).Return(&models.CheckInRow{Name: "Ana"}, nil)

	assert.Equal(t, http.StatusOK, f.serve(http.MethodPost, "/api/checkin", `{"name":"Ana"}`, "").Code)
}

func TestSetup_GuestRoutesRequireToken(t *testing.T) {
	f := newFixture(t)
	f.guests.On("List", mock.Anything, "").Return(&models.GuestList{Items: []models.Guest{}}, nil)

	assert.Equal(t, http.StatusUnauthorized, f.serve(http.MethodGet, "/api/v1/guests", "", "").Code)
	assert.Equal(t, http.StatusOK, f.serve(http.MethodGet, "/api/v1/guests", "", staffToken(t)).Code)
}

func TestSetup_AttendanceRouteResolves(t *testing.T) {
	f := newFixture(t)
	f.guests.On("SetAttendance", mock.Anything, "Ana", true).Return(&models.Guest{Name: "Ana", Attended: true}, nil)

	w := f.serve(http.MethodPut, "/api/v1/guests/Ana/attendance", `{"attended":true}`, staffToken(t))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"attended":true`)
}
