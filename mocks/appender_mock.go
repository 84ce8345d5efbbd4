package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// AppenderMock is a testify/mock for sheets.Appender.
// We use this to test check-in submission without Google or a workbook.
type AppenderMock struct{ mock.Mock }

func (m *AppenderMock) Append(ctx context.Context, row []string) (string, error) {
	args := m.Called(ctx, row)
	return args.String(0), args.Error(1)
}
