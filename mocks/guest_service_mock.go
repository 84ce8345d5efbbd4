package mocks

import (
	"context"
	"io"

	"CeibaCheckIn/models"

	"github.com/stretchr/testify/mock"
)

// GuestServiceMock is a testify/mock for services.GuestService.
// We use this to test the HTTP handlers without real business logic.
type GuestServiceMock struct{ mock.Mock }

func (m *GuestServiceMock) Boot(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *GuestServiceMock) List(ctx context.Context, query string) (*models.GuestList, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.(*models.GuestList), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestServiceMock) Get(ctx context.Context, name string) (*models.Guest, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.(*models.Guest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestServiceMock) Upsert(ctx context.Context, req models.GuestRequest) (*models.Guest, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Guest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestServiceMock) SetAttendance(ctx context.Context, name string, attended bool) (*models.Guest, error) {
	args := m.Called(ctx, name, attended)
	if v := args.Get(0); v != nil {
		return v.(*models.Guest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *GuestServiceMock) Remove(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// Import reads r fully so expectations can match on the uploaded body.
func (m *GuestServiceMock) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, filename, string(body))
	return args.Int(0), args.Error(1)
}

func (m *GuestServiceMock) Export(ctx context.Context, format string) (*models.ExportFile, error) {
	args := m.Called(ctx, format)
	if v := args.Get(0); v != nil {
		return v.(*models.ExportFile), args.Error(1)
	}
	return nil, args.Error(1)
}
