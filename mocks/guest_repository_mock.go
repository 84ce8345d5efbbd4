package mocks

import (
	"context"

	"CeibaCheckIn/models"

	"github.com/stretchr/testify/mock"
)

// GuestRepositoryMock is a testify/mock for repositories.GuestRepository.
// We use this to unit-test the service layer without Redis or a DB.
type GuestRepositoryMock struct{ mock.Mock }

func (m *GuestRepositoryMock) Load(ctx context.Context) ([]models.Guest, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Guest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestRepositoryMock) Save(ctx context.Context, guests []models.Guest) error {
	return m.Called(ctx, guests).Error(0)
}
