package services

import (
	"context"
	"strings"
	"time"

	"CeibaCheckIn/core"
	"CeibaCheckIn/models"
	"CeibaCheckIn/utils/redislog"
	"CeibaCheckIn/utils/sheets"
)

// timestampLayout is ISO-8601 in UTC with milliseconds, e.g. 2024-03-09T14:05:07.123Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CheckInService sends single submissions to the external spreadsheet.
// It never touches the guest collection.
type CheckInService interface {
	Submit(ctx context.Context, req models.CheckInRequest) (*models.CheckInRow, error)
}

type checkInService struct {
	sheet sheets.Appender
	log   *redislog.Logger
	now   func() time.Time
}

func NewCheckInService(sheet sheets.Appender, rlog *redislog.Logger) CheckInService {
	return &checkInService{sheet: sheet, log: rlog, now: time.Now}
}

// Submit appends [timestamp, name, day1 (+ " (Asistió)"), day2] to the sheet.
func (s *checkInService) Submit(ctx context.Context, req models.CheckInRequest) (*models.CheckInRow, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	row := &models.CheckInRow{
		Timestamp: s.now().UTC().Format(timestampLayout),
		Name:      name,
		Day1:      req.Day1,
		Day2:      req.Day2,
		Attended:  req.Attended,
	}

	updated, err := s.sheet.Append(ctx, []string{row.Timestamp, row.Name, day1Cell(req.Day1, req.Attended), row.Day2})
	if err != nil {
		s.log.Error("check-in append failed", map[string]string{"name": name, "err": err.Error()})
		return nil, err
	}
	s.log.Info("check-in appended", map[string]string{"name": name, "range": updated})
	return row, nil
}

func day1Cell(day1 string, attended bool) string {
	if attended {
		return strings.TrimSpace(day1 + " (" + core.StatusAttended + ")")
	}
	return strings.TrimSpace(day1)
}
