package handlers

import (
	"net/http"
	"testing"

	"CeibaCheckIn/mocks"
	"CeibaCheckIn/models"
	"CeibaCheckIn/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuth(svc *mocks.AuthServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", NewAuthHandler(svc).Login)
	return r
}

func TestLogin_Success(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	r := setupAuth(svc)
	svc.On("Login", models.LoginRequest{Password: "ceiba-2024"}).Return("tok", nil)

	w := do(r, http.MethodPost, "/auth/login", `{"password":"ceiba-2024"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"tok"}`, w.Body.String())
}

func TestLogin_Unauthorized(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	r := setupAuth(svc)
	svc.On("Login", models.LoginRequest{Password: "oops"}).Return("", services.ErrInvalidCredentials)
	svc.On("Login", models.LoginRequest{Password: "sign"}).Return("", assert.AnError)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/auth/login", `{"password":"oops"}`).Code)
	w := do(r, http.MethodPost, "/auth/login", `{"password":"sign"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, w.Body.String())
}

func TestLogin_BadRequestAndNotConfigured(t *testing.T) {
	svc := new(mocks.AuthServiceMock)
	r := setupAuth(svc)
	svc.On("Login", models.LoginRequest{Password: "x"}).Return("", services.ErrAuthNotConfigured)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/auth/login", `{}`).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodPost, "/auth/login", `{"password":"x"}`).Code)
}
