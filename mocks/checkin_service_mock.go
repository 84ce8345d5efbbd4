package mocks

import (
	"context"

	"CeibaCheckIn/models"

	"github.com/stretchr/testify/mock"
)

// CheckInServiceMock is a testify/mock for services.CheckInService.
type CheckInServiceMock struct{ mock.Mock }

func (m *CheckInServiceMock) Submit(ctx context.Context, req models.CheckInRequest) (*models.CheckInRow, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.CheckInRow), args.Error(1)
	}
	return nil, args.Error(1)
}
