package mocks

import (
	"CeibaCheckIn/models"

	"github.com/stretchr/testify/mock"
)

// AuthServiceMock is a testify/mock for services.AuthService.
type AuthServiceMock struct{ mock.Mock }

func (m *AuthServiceMock) Login(req models.LoginRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}
