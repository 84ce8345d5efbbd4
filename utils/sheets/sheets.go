// Package sheets appends check-in rows to a spreadsheet: Google Sheets through a
// service account, or a local xlsx workbook for offline desks.
package sheets

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the disabled appender (sheets_driver=none).
var ErrNotConfigured = errors.New("spreadsheet sync not configured")

// Appender appends one row and returns the range it landed in (e.g. "Respuestas!A7:D7").
type Appender interface {
	Append(ctx context.Context, row []string) (string, error)
}

type disabled struct{}

// Disabled returns an Appender that always fails with ErrNotConfigured.
func Disabled() Appender { return disabled{} }

func (disabled) Append(context.Context, []string) (string, error) {
	return "", ErrNotConfigured
}
